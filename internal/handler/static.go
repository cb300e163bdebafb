package handler

import (
	_ "embed"
	"net/http"
)

//go:embed views/index.html
var landingPage []byte

// Landing はAPIの使い方を案内する静的なランディングページを返す。
// GET /
func Landing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(landingPage)
}
