package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pgvector/pgvector-go"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/config"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/logger"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/matcher"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/model"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/repository"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/service"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// catalog-importer loads the ANZSCO occupation catalog from a CSV file into
// the occupations table. Expected columns:
//
//	anzsco_code,occupation_name,list,visa_subclasses,assessing_authority[,embedding]
//
// Rows without an embedding column get one generated from the occupation name
// via the Gemini embedding model. Re-running the importer upserts by code.
func main() {
	csvPath := flag.String("csv", "", "path to the occupation catalog CSV")
	embed := flag.Bool("embed", true, "generate embeddings for rows that lack one")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Println("Could not load .env file")
	}

	log, err := logger.New(config.LoadAppConfig().Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if *csvPath == "" {
		log.Fatal("missing required flag -csv")
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatal("could not open catalog file", zap.Error(err))
	}
	defer f.Close()

	db := connectDB(log)
	repo := repository.NewOccupationRepository(db)

	ctx := context.Background()
	var gemini *service.GeminiService
	if *embed {
		gemini, err = service.NewGeminiService(ctx, log)
		if err != nil {
			log.Fatal("gemini init failed", zap.Error(err))
		}
	}

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		log.Fatal("could not read CSV header", zap.Error(err))
	}
	col := columnIndex(header)

	var imported, embedded, skipped int
	for {
		record, err := reader.Read()
		if err != nil {
			break
		}
		occ := &model.Occupation{
			AnzscoCode:         field(record, col, "anzsco_code"),
			OccupationName:     field(record, col, "occupation_name"),
			List:               field(record, col, "list"),
			VisaSubclasses:     field(record, col, "visa_subclasses"),
			AssessingAuthority: field(record, col, "assessing_authority"),
		}
		if occ.AnzscoCode == "" || occ.OccupationName == "" {
			skipped++
			log.Warn("skipping row without code or name", zap.Strings("record", record))
			continue
		}

		if raw := field(record, col, "embedding"); raw != "" {
			vec, err := matcher.ParseVector(raw)
			if err != nil {
				skipped++
				log.Warn("skipping row with unparseable embedding",
					zap.String("anzsco_code", occ.AnzscoCode),
					zap.Error(err))
				continue
			}
			occ.Embedding = pgvector.NewVector(vec)
		} else if gemini != nil {
			vecs, err := gemini.EmbedTexts(ctx, []string{occ.OccupationName})
			if err != nil {
				skipped++
				log.Warn("embedding failed, skipping row",
					zap.String("anzsco_code", occ.AnzscoCode),
					zap.Error(err))
				continue
			}
			occ.Embedding = pgvector.NewVector(vecs[0])
			embedded++
			// keep well under the embedding API rate limit
			time.Sleep(200 * time.Millisecond)
		}

		if err := repo.Upsert(occ); err != nil {
			log.Fatal("upsert failed",
				zap.String("anzsco_code", occ.AnzscoCode),
				zap.Error(err))
		}
		imported++
	}

	log.Info("catalog import finished",
		zap.Int("imported", imported),
		zap.Int("embedded", embedded),
		zap.Int("skipped", skipped))
}

func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	return col
}

func field(record []string, col map[string]int, name string) string {
	idx, ok := col[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func connectDB(log *zap.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("could not connect to database", zap.Error(err))
	}
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatal("could not enable pgvector extension", zap.Error(err))
	}
	if err := db.AutoMigrate(&model.Occupation{}); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	return db
}
