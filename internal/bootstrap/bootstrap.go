package bootstrap

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/laukik86/chatmate/internal/config"
	"github.com/laukik86/chatmate/internal/core/ports"
	"github.com/laukik86/chatmate/internal/core/usecase"
	"github.com/laukik86/chatmate/internal/infrastructure/chunking"
	"github.com/laukik86/chatmate/internal/infrastructure/embedding/huggingface"
	"github.com/laukik86/chatmate/internal/infrastructure/extractor/pdfdoc"
	"github.com/laukik86/chatmate/internal/infrastructure/llm/groq"
	"github.com/laukik86/chatmate/internal/infrastructure/queue/nats"
	"github.com/laukik86/chatmate/internal/infrastructure/repository/postgres"
	"github.com/laukik86/chatmate/internal/infrastructure/resilience"
	"github.com/laukik86/chatmate/internal/infrastructure/sqlchain"
	"github.com/laukik86/chatmate/internal/infrastructure/storage/localfs"
	"github.com/laukik86/chatmate/internal/infrastructure/vector/pinecone"
)

type App struct {
	Config config.Config

	Queue ports.MessageQueue
	Repo  ports.DocumentRepository

	ChatUC      ports.ChatService
	SummarizeUC ports.ConversationSummarizer
	RecordsUC   ports.RecordEditor
	UploadUC    ports.DocumentIngestor
	ProcessUC   ports.DocumentProcessor

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	cutoffs := postgres.NewCutoffRepository(db)
	if err := cutoffs.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure cutoffs schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())
	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	fastLLM := groq.New(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqFastModel)
	smartLLM := groq.New(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqSmartModel)

	hfClient := huggingface.New(cfg.HFBaseURL, cfg.HFToken, cfg.HFEmbedModel, cfg.HFRerankModel)
	embedder := huggingface.NewEmbedder(hfClient)

	vectorDB := pinecone.New(cfg.PineconeIndexHost, cfg.PineconeAPIKey, cfg.PineconeNamespace, cfg.VectorDimension)
	chunker := chunking.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap)
	extractor := pdfdoc.NewExtractor()

	chain := sqlchain.New(db, smartLLM)

	rewriteUC := usecase.NewRewriteUseCase(fastLLM)
	routerUC := usecase.NewRouterUseCase(fastLLM)
	sqlPathUC := usecase.NewSQLPathUseCase(chain, fastLLM)
	vectorPathUC := usecase.NewVectorPathUseCase(embedder, vectorDB, hfClient, fastLLM, cfg.RetrievalTopK, cfg.RerankTopN)
	chatUC := usecase.NewChatUseCase(rewriteUC, routerUC, sqlPathUC, vectorPathUC)
	summarizeUC := usecase.NewSummarizeUseCase(fastLLM)
	recordsUC := usecase.NewRecordsUseCase(embedder, vectorDB)

	limiter := rate.NewLimiter(rate.Limit(cfg.EmbedRatePerSecond), 1)
	pipeline := usecase.NewIngestPipeline(chunker, hfClient, vectorDB, limiter)
	uploadUC := usecase.NewUploadUseCase(repo, storage, queue)
	processUC := usecase.NewProcessUseCase(repo, storage, extractor, pipeline)

	return &App{
		Config: cfg,
		Queue:  queue,
		Repo:   repo,

		ChatUC:      chatUC,
		SummarizeUC: summarizeUC,
		RecordsUC:   recordsUC,
		UploadUC:    uploadUC,
		ProcessUC:   processUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
