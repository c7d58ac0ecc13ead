package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"hospitalrun-locale/internal/application"
	"hospitalrun-locale/internal/config"
	"hospitalrun-locale/internal/domain"
	"hospitalrun-locale/internal/domain/model"
	"hospitalrun-locale/internal/infra/logging"
	"hospitalrun-locale/internal/usecase"
)

// seed file format:
//
//	hradmin: es
//	testuser@test.ts: fr
func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	seedPath := flag.String("file", "preferences.yaml", "user -> language YAML map")
	replace := flag.Bool("replace", false, "drop entries not present in the seed file")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, true)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.New(cfg.Log, true)

	b, err := os.ReadFile(*seedPath)
	if err != nil {
		log.Fatalf("read seed: %v", err)
	}
	var entries map[string]string
	if err := yaml.Unmarshal(b, &entries); err != nil {
		log.Fatalf("parse seed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cfg.Store.Backend == config.BackendMemory {
		log.Fatalf("seeding the memory backend has no effect; configure postgres or redis")
	}
	store, closeStore, err := application.OpenDocumentStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("document store: %v", err)
	}
	defer closeStore()

	doc, err := store.Get(ctx, cfg.Store.DocumentID)
	switch {
	case err == nil && !*replace:
	case err == nil || errors.Is(err, domain.ErrNotFound):
		doc = model.NewPreferencesDocument(cfg.Store.DocumentID)
	default:
		log.Fatalf("load preferences: %v", err)
	}
	if err := applySeed(doc, entries); err != nil {
		log.Fatalf("seed file: %v", err)
	}
	if err := store.Put(ctx, doc); err != nil {
		log.Fatalf("save preferences: %v", err)
	}

	fmt.Printf("%s now holds %d users\n", cfg.Store.DocumentID, len(doc.Users))
	for _, name := range doc.UserNames() {
		lang, _ := doc.Language(name)
		fmt.Printf("  - %s: %s\n", name, lang)
	}
}

// applySeed writes every entry into doc, or none of them if any code is not a
// valid language tag.
func applySeed(doc *model.PreferencesDocument, entries map[string]string) error {
	clean := make(map[string]string, len(entries))
	for user, code := range entries {
		if user == "" {
			return fmt.Errorf("empty user name: %w", domain.ErrInvalidArgument)
		}
		norm, err := usecase.NormalizeLanguage(code)
		if err != nil {
			return fmt.Errorf("user %s: %w", user, err)
		}
		clean[user] = norm
	}
	for user, code := range clean {
		doc.SetLanguage(user, code)
	}
	return nil
}
