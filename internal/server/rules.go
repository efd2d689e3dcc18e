package server

import (
	"context"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/docuvault/docintel/gen/proto/docintel/v1"
	"github.com/docuvault/docintel/internal/repository"
)

type RulesService struct {
	v1.UnimplementedRulesServiceServer
	ruleRepo repository.FilingRuleRepository
	logger   *slog.Logger
}

func NewRulesService(ruleRepo repository.FilingRuleRepository, logger *slog.Logger) *RulesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RulesService{ruleRepo: ruleRepo, logger: logger}
}

func (s *RulesService) ListRules(ctx context.Context, _ *v1.ListRulesRequest) (*v1.ListRulesResponse, error) {
	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list filing rules", "error", err)
		return nil, status.Errorf(codes.Internal, "list rules: %v", err)
	}
	s.logger.Info("filing rules listed successfully", "count", len(rules))

	out := make([]*v1.FilingRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, toPBRule(&r))
	}
	return &v1.ListRulesResponse{Rules: out}, nil
}
