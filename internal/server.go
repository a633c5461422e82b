package internal

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"borica/config"
	"borica/entity"
	"borica/services"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cast"
)

const (
	formPreview = "/form/:trtype"
	healthCheck = "/health"
)

// Server renders signed forms for preview. It never talks to the gateway.
type Server struct {
	conf       *config.Config
	httpServer *http.Server
	checkout   services.Checkout
	logger     services.LogHandler
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf: conf,
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.GET(formPreview, s.formPreview)
	router.GET(healthCheck, s.health)
}

func (s *Server) SetCheckoutService(checkout services.Checkout) {
	s.checkout = checkout
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

// formPreview answers GET /form/:trtype?amount=10.20&order=123&desc=...&auto=1
// with the signed form, or with JSON when format=json.
func (s *Server) formPreview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	t, ok := entity.ParseTransactionType(ps.ByName("trtype"))
	if !ok {
		s.logger.Warn(fmt.Sprintf("[%s] unsupported transaction type: %s", reqID, ps.ByName("trtype")))
		http.Error(w, "unsupported transaction type", http.StatusBadRequest)
		return
	}

	details, err := orderDetailsFromQuery(t, r)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] form preview: %v", reqID, err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form, err := s.checkout.PrepareForm(ctx, details)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	if query.Get("format") == "json" {
		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(form); err != nil {
			s.logger.Error(fmt.Sprintf("[%s] form preview: encode json", reqID), err)
		}
		return
	}

	page, err := RenderForm(form.Action, form.Fields, cast.ToBool(query.Get("auto")))
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] form preview: render", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func orderDetailsFromQuery(t entity.TransactionType, r *http.Request) (entity.OrderDetails, error) {
	query := r.URL.Query()
	details := entity.OrderDetails{
		Type:                     t,
		Description:              query.Get("desc"),
		OrderIdentifier:          query.Get("order_id"),
		Email:                    query.Get("email"),
		Language:                 query.Get("lang"),
		RetrievalReferenceNumber: query.Get("rrn"),
		InternalReference:        query.Get("int_ref"),
		OriginalTransactionType:  query.Get("tran_trtype"),
	}
	var err error
	if value := query.Get("amount"); value != "" {
		if details.Amount, err = cast.ToFloat64E(value); err != nil {
			return details, fmt.Errorf("amount: %w", err)
		}
	}
	if value := query.Get("order"); value != "" {
		if details.Order, err = ToOrderNumber(value); err != nil {
			return details, fmt.Errorf("order: %w", err)
		}
	}
	return details, nil
}
