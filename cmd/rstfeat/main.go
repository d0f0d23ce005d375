// Package main implements the rstfeat CLI: feature extraction from an
// RST discourse corpus into svmlight training data.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crimson-sun/rstfeat/internal/config"
	"github.com/crimson-sun/rstfeat/internal/corpus"
	"github.com/crimson-sun/rstfeat/internal/feature"
	"github.com/crimson-sun/rstfeat/internal/logging"
	"github.com/crimson-sun/rstfeat/internal/output"
)

var version = "dev"

var (
	flagCorpusDir string
	flagOutDir    string
	flagLive      bool
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "rstfeat",
	Short:   "Extract discourse-parsing feature vectors from an RST corpus",
	Version: version,
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract EDU-pair feature vectors",
	Long: `Extract one feature vector per ordered EDU pair from every document
in the corpus, labeled for attachment and for relation type, in
svmlight format. With --live, no gold labels are read and a single
unlabeled pair file is written instead.`,
	RunE: runExtract,
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Describe the extracted feature fields",
	Long:  "Print the feature schema: each group's description and its columns.",
	RunE:  runFields,
}

func init() {
	extractCmd.Flags().StringVar(&flagCorpusDir, "corpus", "", "corpus directory (overrides RSTFEAT_CORPUS_DIR)")
	extractCmd.Flags().StringVar(&flagOutDir, "out", "", "output directory (overrides RSTFEAT_OUT_DIR)")
	extractCmd.Flags().BoolVar(&flagLive, "live", false, "no gold labels: emit unlabeled records for inference")
	extractCmd.Flags().BoolVar(&flagDebug, "debug", false, "add debug columns and debug logging")
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(fieldsCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("corpus") {
		cfg.CorpusDir = flagCorpusDir
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = flagOutDir
	}
	if cmd.Flags().Changed("live") {
		cfg.Live = flagLive
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = flagDebug
	}

	level := logging.ParseLevel(cfg.Log.Level)
	if cfg.Debug {
		level = logging.ParseLevel("debug")
	}
	log, err := logging.New(level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer log.Sync()

	c, err := corpus.Load(cfg.CorpusDir)
	if err != nil {
		return err
	}
	log.Info("corpus loaded",
		zap.String("dir", cfg.CorpusDir),
		zap.Int("documents", c.Len()))

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	in := &feature.FeatureInput{Corpus: c, Debug: cfg.Debug, Log: log}
	if cfg.Live {
		return extractLive(in, cfg.OutDir, log)
	}
	return extractCorpus(in, cfg.OutDir, log)
}

// extractCorpus writes attachment and relation training files plus the
// shared feature vocabulary and the relation label inventory.
func extractCorpus(in *feature.FeatureInput, outDir string, log *zap.Logger) error {
	attachF, err := os.Create(filepath.Join(outDir, "edu-pairs.svm"))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer attachF.Close()
	relF, err := os.Create(filepath.Join(outDir, "relations.svm"))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer relF.Close()

	feats := output.NewVocabulary()
	labels := output.NewVocabulary()
	attachW := output.NewSVMLight(attachF, feats, labels)
	relW := output.NewSVMLight(relF, feats, labels)

	pairs := 0
	for sample, err := range feature.ExtractPairFeatures(in, false) {
		if err != nil {
			return err
		}
		if err := attachW.Write(sample.Attachment); err != nil {
			return err
		}
		if err := relW.Write(sample.Relation); err != nil {
			return err
		}
		pairs++
	}
	if err := attachW.Flush(); err != nil {
		return err
	}
	if err := relW.Flush(); err != nil {
		return err
	}

	if err := dumpVocab(filepath.Join(outDir, "vocabulary"), feats); err != nil {
		return err
	}
	if err := dumpVocab(filepath.Join(outDir, "relation-labels"), labels); err != nil {
		return err
	}

	log.Info("extraction complete",
		zap.Int("pairs", pairs),
		zap.Int("features", feats.Len()),
		zap.Int("relation_labels", labels.Len()))
	return nil
}

// extractLive writes a single unlabeled pair file for inference.
func extractLive(in *feature.FeatureInput, outDir string, log *zap.Logger) error {
	pairF, err := os.Create(filepath.Join(outDir, "edu-pairs.svm"))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer pairF.Close()

	feats := output.NewVocabulary()
	w := output.NewSVMLight(pairF, feats, output.NewVocabulary())

	pairs := 0
	for sample, err := range feature.ExtractPairFeatures(in, true) {
		if err != nil {
			return err
		}
		if err := w.Write(sample.Attachment); err != nil {
			return err
		}
		pairs++
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := dumpVocab(filepath.Join(outDir, "vocabulary"), feats); err != nil {
		return err
	}

	log.Info("live extraction complete",
		zap.Int("pairs", pairs),
		zap.Int("features", feats.Len()))
	return nil
}

func dumpVocab(path string, v *output.Vocabulary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create vocabulary: %w", err)
	}
	defer f.Close()
	if err := v.Dump(f); err != nil {
		return err
	}
	return f.Close()
}

// runFields prints the pair-vector schema. Needs no corpus: the schema
// is fixed at group assembly.
func runFields(_ *cobra.Command, _ []string) error {
	in := &feature.FeatureInput{Debug: true}
	fmt.Println(feature.NewPairKeys(in, nil).HelpText())
	return nil
}
