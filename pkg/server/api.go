package server

import (
	"fmt"

	"github.com/meplus/tasks-api/pkg/config"
	handlers "github.com/meplus/tasks-api/pkg/handlers/http"
	"github.com/meplus/tasks-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	APIServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	return &APIServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *APIServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("Starting API server")
	return s.Router.Listen(addr)
}

func (s *APIServer) setupRoutes() {
	s.Router.Use(s.middlewareTransport.RecoveryMiddleware.Middleware())
	s.Router.Use(s.middlewareTransport.CORSMiddleware.Middleware())
	s.Router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())

	v1 := s.Router.Group("/api/v1")
	// Rate limiting runs before auth so unauthenticated floods are
	// counted too. The health endpoint stays outside both.
	v1.Use(s.middlewareTransport.RateLimitMiddleware.Middleware())
	v1.Use(s.middlewareTransport.AuthMiddleware.Middleware())
	{
		tasks := v1.Group("/tasks")
		{
			tasks.Post("", s.handlerTransport.CreateTaskHandler.Handle)
			tasks.Get("", s.handlerTransport.ListTasksHandler.Handle)
			// Registered before /:task_id so "export" is not parsed as an ID.
			tasks.Get("/export", s.handlerTransport.ExportTasksHandler.Handle)
			tasks.Get("/:task_id", s.handlerTransport.GetTaskHandler.Handle)
			tasks.Put("/:task_id", s.handlerTransport.UpdateTaskHandler.Handle)
			tasks.Delete("/:task_id", s.handlerTransport.DeleteTaskHandler.Handle)
			tasks.Post("/:task_id/share", s.handlerTransport.ShareTaskHandler.Handle)
			tasks.Delete("/:task_id/share", s.handlerTransport.UnshareTaskHandler.Handle)
			tasks.Get("/:task_id/export", s.handlerTransport.ExportTaskHandler.Handle)
		}

		templates := v1.Group("/templates")
		{
			templates.Post("", s.handlerTransport.CreateTemplateHandler.Handle)
			templates.Get("", s.handlerTransport.ListTemplatesHandler.Handle)
			templates.Get("/:template_id", s.handlerTransport.GetTemplateHandler.Handle)
			templates.Put("/:template_id", s.handlerTransport.UpdateTemplateHandler.Handle)
			templates.Delete("/:template_id", s.handlerTransport.DeleteTemplateHandler.Handle)
		}

		v1.Get("/usage", s.handlerTransport.GetUsageHandler.Handle)

		v1.Post("/super-prompts", s.handlerTransport.GenerateSuperPromptHandler.Handle)
		v1.Post("/improve-prompt", s.handlerTransport.ImprovePromptHandler.Handle)
	}
}

func (s *APIServer) Shutdown() error {
	return s.Router.Shutdown()
}
