package server

import (
	"context"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/docuvault/docintel/gen/proto/docintel/v1"
	"github.com/docuvault/docintel/internal/repository"
)

type TemplatesService struct {
	v1.UnimplementedTemplatesServiceServer
	templateRepo repository.TemplateRepository
	logger       *slog.Logger
}

func NewTemplatesService(templateRepo repository.TemplateRepository, logger *slog.Logger) *TemplatesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplatesService{templateRepo: templateRepo, logger: logger}
}

func (s *TemplatesService) ListTemplates(ctx context.Context, req *v1.ListTemplatesRequest) (*v1.ListTemplatesResponse, error) {
	language := strings.TrimSpace(req.GetLanguage())

	s.logger.Info("listing templates", "language", language)
	templates, err := s.templateRepo.ActiveTemplates(ctx, language)
	if err != nil {
		s.logger.Error("failed to list templates", "language", language, "error", err)
		return nil, status.Errorf(codes.Internal, "list templates: %v", err)
	}
	s.logger.Info("templates listed successfully", "language", language, "count", len(templates))

	out := make([]*v1.Template, 0, len(templates))
	for _, t := range templates {
		out = append(out, toPBTemplate(t))
	}
	return &v1.ListTemplatesResponse{Templates: out}, nil
}
