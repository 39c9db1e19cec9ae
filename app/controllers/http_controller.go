package controllers

import "net/http"

type HTTPController struct{}

func NewHTTPController() *HTTPController { return &HTTPController{} }

func (c *HTTPController) Index(w http.ResponseWriter, r *http.Request) {
	writeMensaje(w, http.StatusOK, "API REST DRAGON BALL")
}

func (c *HTTPController) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
