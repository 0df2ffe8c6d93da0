package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/laukik86/chatmate/internal/config"
	"github.com/laukik86/chatmate/internal/core/usecase"
	"github.com/laukik86/chatmate/internal/infrastructure/chunking"
	"github.com/laukik86/chatmate/internal/infrastructure/embedding/huggingface"
	"github.com/laukik86/chatmate/internal/infrastructure/extractor/pdfdoc"
	"github.com/laukik86/chatmate/internal/infrastructure/vector/pinecone"
	"github.com/laukik86/chatmate/internal/observability/logging"
)

func main() {
	_ = godotenv.Load()

	var (
		filePath = flag.String("file", "", "path to the PDF to ingest")
		idPrefix = flag.String("prefix", "pdf", "chunk id prefix")
	)
	flag.Parse()
	if *filePath == "" {
		log.Fatal("usage: ingest -file <path.pdf> [-prefix pdf]")
	}

	cfg := config.Load()
	slog.SetDefault(logging.NewJSONLogger("chatmate-ingest", cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	file, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer file.Close()

	extractor := pdfdoc.NewExtractor()
	text, err := extractor.Extract(ctx, file)
	if err != nil {
		log.Fatalf("extract text: %v", err)
	}

	hfClient := huggingface.New(cfg.HFBaseURL, cfg.HFToken, cfg.HFEmbedModel, cfg.HFRerankModel)
	vectorDB := pinecone.New(cfg.PineconeIndexHost, cfg.PineconeAPIKey, cfg.PineconeNamespace, cfg.VectorDimension)
	chunker := chunking.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap)
	limiter := rate.NewLimiter(rate.Limit(cfg.EmbedRatePerSecond), 1)

	pipeline := usecase.NewIngestPipeline(chunker, hfClient, vectorDB, limiter)
	report, err := pipeline.IngestText(ctx, *idPrefix, text)
	if err != nil {
		log.Fatalf("ingest error: %v", err)
	}

	slog.Info("ingest_done",
		"file", *filePath,
		"chunks", report.Chunks,
		"upserted", report.Upserted,
		"skipped", report.Skipped,
	)
}
