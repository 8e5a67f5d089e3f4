package repositories

import (
	"io"
	"time"
)

// ChunkRepository owns the chunk directory of in-flight uploads. Chunk
// files are named <baseName>.part_<index>; the repository, not the
// client, decides the index a new chunk lands at.
type ChunkRepository interface {
	// NextChunkIndex scans existing chunk files for baseName and returns
	// the highest suffix + 1 (0 when none exist).
	NextChunkIndex(baseName string) (int, error)
	// ReceiveChunk writes the payload at the next server-assigned index
	// and returns that index.
	ReceiveChunk(baseName string, src io.Reader) (int, error)
	// MergeChunks concatenates chunks 0..totalChunks-1 into the videos
	// directory and deletes each chunk file after it is appended. On
	// failure the partially built output stays on disk and the error
	// names the stuck chunk index.
	MergeChunks(baseName string, totalChunks int) (string, error)
	CleanupOldChunks(maxAge time.Duration) error
}
