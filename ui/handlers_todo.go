package ui

import (
	"net/http"

	"focusflow/app"
)

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := s.todos.ListTodos(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var req app.CreateTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	todo, err := s.todos.CreateTodo(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, todo)
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	todoID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req app.UpdateTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	todo, err := s.todos.UpdateTodo(r.Context(), userID(r), todoID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	todoID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.todos.DeleteTodo(r.Context(), userID(r), todoID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleTodo(w http.ResponseWriter, r *http.Request) {
	todoID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	todo, err := s.todos.ToggleTodo(r.Context(), userID(r), todoID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}
