package repositories

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"video-mcq/pkg/retry"
)

var chunkSuffix = regexp.MustCompile(`\.part_(\d+)$`)

// ChunkRepository persists chunk files under chunksDir and merges them
// into videosDir. All operations take fileMutex: chunk numbering is
// derived from a directory scan, so concurrent writes for the same base
// name must be serialized within this process. Two uploads that
// sanitize to the same base name still collide across requests; the
// upload session carries no other identity.
type ChunkRepository struct {
	chunksDir   string
	videosDir   string
	retryPolicy retry.Policy
	fileMutex   sync.Mutex

	// openChunk is swapped out by tests to simulate busy reads.
	openChunk func(path string) (io.ReadCloser, error)
}

func NewChunkRepository(chunksDir, videosDir string, retryPolicy retry.Policy) *ChunkRepository {
	return &ChunkRepository{
		chunksDir:   chunksDir,
		videosDir:   videosDir,
		retryPolicy: retryPolicy,
		openChunk: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

func (r *ChunkRepository) ChunksDir() string {
	return r.chunksDir
}

func (r *ChunkRepository) NextChunkIndex(baseName string) (int, error) {
	r.fileMutex.Lock()
	defer r.fileMutex.Unlock()
	return r.nextChunkIndexLocked(baseName)
}

func (r *ChunkRepository) nextChunkIndexLocked(baseName string) (int, error) {
	entries, err := os.ReadDir(r.chunksDir)
	if err != nil {
		return 0, fmt.Errorf("chunk directory scan failed: %w", err)
	}

	highest := -1
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), baseName) {
			continue
		}
		match := chunkSuffix.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		index, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if index > highest {
			highest = index
		}
	}
	return highest + 1, nil
}

// ReceiveChunk assigns the next server-side index for baseName and
// writes the payload there. The declared client index is deliberately
// not used for placement.
func (r *ChunkRepository) ReceiveChunk(baseName string, src io.Reader) (int, error) {
	r.fileMutex.Lock()
	defer r.fileMutex.Unlock()

	index, err := r.nextChunkIndexLocked(baseName)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(r.chunksDir, 0755); err != nil {
		return 0, fmt.Errorf("chunk directory could not be created: %w", err)
	}

	chunkPath := filepath.Join(r.chunksDir, fmt.Sprintf("%s.part_%d", baseName, index))
	out, err := os.Create(chunkPath)
	if err != nil {
		return 0, fmt.Errorf("chunk file could not be created: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(chunkPath)
		return 0, fmt.Errorf("chunk %d could not be written: %w", index, err)
	}
	return index, out.Close()
}

// MergeChunks builds videosDir/<baseName> from chunks 0..totalChunks-1
// in ascending order. Each chunk is appended, then its source file is
// deleted. "Resource busy" reads are retried on a fixed-delay schedule;
// exhaustion or any other error aborts the merge and leaves the
// truncated output behind for the caller to treat as invalid.
func (r *ChunkRepository) MergeChunks(baseName string, totalChunks int) (string, error) {
	r.fileMutex.Lock()
	defer r.fileMutex.Unlock()

	if err := os.MkdirAll(r.videosDir, 0755); err != nil {
		return "", fmt.Errorf("videos directory could not be created: %w", err)
	}

	finalPath := filepath.Join(r.videosDir, baseName)

	// A retried merge attempt must start from an empty destination.
	out, err := os.Create(finalPath)
	if err != nil {
		return "", fmt.Errorf("final file could not be created: %w", err)
	}
	defer out.Close()

	for i := 0; i < totalChunks; i++ {
		chunkPath := filepath.Join(r.chunksDir, fmt.Sprintf("%s.part_%d", baseName, i))

		err := retry.Do(r.retryPolicy, isBusy, func() error {
			return r.appendChunk(out, chunkPath)
		})
		if err != nil {
			return "", fmt.Errorf("failed to merge chunk %d: %w", i, err)
		}

		if err := os.Remove(chunkPath); err != nil {
			log.Printf("WARN: merged chunk %d could not be deleted: %v", i, err)
		}
	}

	if err := out.Sync(); err != nil {
		return "", fmt.Errorf("final file could not be synced: %w", err)
	}
	return finalPath, nil
}

func (r *ChunkRepository) appendChunk(out *os.File, chunkPath string) error {
	in, err := r.openChunk(chunkPath)
	if err != nil {
		return err
	}
	defer in.Close()

	// The chunk is buffered in full before anything reaches out. A read
	// that fails partway through would otherwise leave a partial prefix
	// in the output, and the retried attempt would append the chunk a
	// second time after it.
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func isBusy(err error) bool {
	if errors.Is(err, syscall.EBUSY) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "resource busy")
}

// CleanupOldChunks drops chunk files unmodified for longer than maxAge.
// Abandoned uploads never merge, so nothing else removes their chunks.
func (r *ChunkRepository) CleanupOldChunks(maxAge time.Duration) error {
	r.fileMutex.Lock()
	defer r.fileMutex.Unlock()

	entries, err := os.ReadDir(r.chunksDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || chunkSuffix.FindStringSubmatch(entry.Name()) == nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > maxAge {
			stale := filepath.Join(r.chunksDir, entry.Name())
			if err := os.Remove(stale); err != nil {
				log.Printf("WARN: stale chunk could not be removed %s: %v", stale, err)
			} else {
				log.Printf("Removed stale chunk: %s", stale)
			}
		}
	}
	return nil
}
