package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Tasks
	CreateTaskHandler  Handler
	ListTasksHandler   Handler
	GetTaskHandler     Handler
	UpdateTaskHandler  Handler
	DeleteTaskHandler  Handler
	ShareTaskHandler   Handler
	UnshareTaskHandler Handler
	ExportTaskHandler  Handler
	ExportTasksHandler Handler

	// Templates
	CreateTemplateHandler Handler
	ListTemplatesHandler  Handler
	GetTemplateHandler    Handler
	UpdateTemplateHandler Handler
	DeleteTemplateHandler Handler

	// Account
	GetUsageHandler Handler

	// AI
	GenerateSuperPromptHandler Handler
	ImprovePromptHandler       Handler
}
