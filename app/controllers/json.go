package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/ckoockiy/api-rest-dbz/app/dto"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMensaje(w http.ResponseWriter, status int, respuesta string) {
	writeJSON(w, status, dto.MensajeResponse{Respuesta: respuesta})
}
