package controllers

import (
	"context"

	"github.com/lintang-b-s/binknap/pkg/http/usecases"
)

type FrontierService interface {
	Frontier(ctx context.Context, q usecases.FrontierQuery) (*usecases.FrontierResult, error)
}
