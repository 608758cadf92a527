package product_controller

import (
	"github.com/phnam24/frontend-v1-sub001/repository"
	"go.uber.org/zap"
)

// Handler serves the public catalog endpoints.
type Handler struct {
	products repository.ProductRepository
	log      *zap.Logger
}

func New(products repository.ProductRepository, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{products: products, log: log}
}
