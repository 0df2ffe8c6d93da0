package usecase

import (
	"context"
	"fmt"

	"github.com/laukik86/chatmate/internal/core/domain"
)

// ChatUseCase is the request pipeline: rewrite the question into a standalone
// query, route it, answer it on the chosen path, normalize the text.
type ChatUseCase struct {
	rewriter   *RewriteUseCase
	router     *RouterUseCase
	sqlPath    *SQLPathUseCase
	vectorPath *VectorPathUseCase
}

func NewChatUseCase(
	rewriter *RewriteUseCase,
	router *RouterUseCase,
	sqlPath *SQLPathUseCase,
	vectorPath *VectorPathUseCase,
) *ChatUseCase {
	return &ChatUseCase{
		rewriter:   rewriter,
		router:     router,
		sqlPath:    sqlPath,
		vectorPath: vectorPath,
	}
}

func (uc *ChatUseCase) Chat(ctx context.Context, question string, history []domain.Turn) (*domain.ChatReply, error) {
	standalone, err := uc.rewriter.Rewrite(ctx, history, question)
	if err != nil {
		return nil, err
	}

	route, err := uc.router.Route(ctx, standalone)
	if err != nil {
		return nil, err
	}

	var answer string
	switch route {
	case domain.RouteSQL:
		answer = uc.sqlPath.Answer(ctx, standalone)
	case domain.RouteVector:
		answer, err = uc.vectorPath.Answer(ctx, standalone)
		if err != nil {
			return nil, fmt.Errorf("vector path: %w", err)
		}
	}

	return &domain.ChatReply{
		Reply:    NormalizeAnswer(answer),
		ToolUsed: route,
	}, nil
}
