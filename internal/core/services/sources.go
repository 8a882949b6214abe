package services

import (
	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// uniqueSources deduplicates retrieved chunks by source name, keeping the
// maximum observed similarity per source. Output order is the insertion
// order of first occurrence, not similarity order. Chunks without a source
// name are dropped here but still appear in the result's chunks_used.
func uniqueSources(chunks []*domain.RetrievedChunk) []domain.Source {
	sources := []domain.Source{}
	index := map[string]int{}

	for _, rc := range chunks {
		name := rc.Chunk.Source
		if name == "" {
			continue
		}
		if i, seen := index[name]; seen {
			if rc.Similarity > sources[i].Similarity {
				sources[i].Similarity = rc.Similarity
				sources[i].Page = rc.Chunk.Page
			}
			continue
		}
		index[name] = len(sources)
		sources = append(sources, domain.Source{
			Name:       name,
			Page:       rc.Chunk.Page,
			Similarity: rc.Similarity,
		})
	}

	return sources
}

// chunksUsed mirrors every retrieved chunk in the engine's ranking order
func chunksUsed(chunks []*domain.RetrievedChunk) []domain.ChunkUsed {
	used := []domain.ChunkUsed{}
	for _, rc := range chunks {
		used = append(used, domain.ChunkUsed{
			Text:       rc.Chunk.Content,
			Source:     rc.Chunk.Source,
			Page:       rc.Chunk.Page,
			Similarity: rc.Similarity,
		})
	}
	return used
}
