package routes

import (
	"net/http"

	swaggerHandler "github.com/swaggo/http-swagger"

	_ "github.com/oggyb/hubtel-sms/internal/docs" // swagger docs
	"github.com/oggyb/hubtel-sms/internal/response"
)

type AppDeps struct {
	Home HomeHandler
	SMS  SMSHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type SMSHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	SendBulk(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("POST /sms/send", d.SMS.Send)
	mux.HandleFunc("POST /sms/bulk", d.SMS.SendBulk)
	mux.HandleFunc("GET /sms/status/{messageId}", d.SMS.Status)
	mux.HandleFunc("GET /balance", d.SMS.Balance)

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
