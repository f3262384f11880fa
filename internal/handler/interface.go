package handler

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type Request any
type Response any

// BasicHandler answers a request from its parsed fields alone. The returned
// status is used for both success and error responses.
type BasicHandler[R Request, Res Response] interface {
	Handle(ctx context.Context, req *R) (*Res, int, error)
}

// FiberHandler additionally gets the fiber context, e.g. to set headers.
type FiberHandler[R Request, Res Response] interface {
	Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *R) (*Res, int, error)
}

type FiberWSHandler[R Request] interface {
	HandleWS(c *websocket.Conn, ctx context.Context, req *R)
}
