package markov

import (
	"go/build"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const floatTolerance = 1e-9

// trainString trains a model on corpus, failing the test on error.
func trainString(t testing.TB, corpus string, windowLength int) *Model {
	t.Helper()
	trainer, err := NewTrainer(windowLength)
	if err != nil {
		t.Fatalf("NewTrainer(%d) error = %v", windowLength, err)
	}
	model, err := trainer.Train(strings.NewReader(corpus))
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	return model
}

// scriptedSource replays fixed draws, cycling when it runs out.
type scriptedSource struct {
	draws []float64
	next  int
}

func (s *scriptedSource) Float64() float64 {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
