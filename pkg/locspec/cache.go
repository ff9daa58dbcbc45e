package locspec

import (
	lru "github.com/hashicorp/golang-lru"
)

// ParseCache memoizes parsed locations for repeated interactive parses
// of the same input. Cached values are never handed out directly:
// lookups return clones, so callers cannot alias the cached location
// or observe its memoized string state.
type ParseCache struct {
	parser *Parser
	cache  *lru.Cache
}

type parseCacheKey struct {
	input     string
	matchType MatchType
}

type parseCacheEntry struct {
	loc  *Location
	rest string
}

// NewParseCache returns a cache of at most size parsed locations in
// front of parser.
func NewParseCache(parser *Parser, size int) (*ParseCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &ParseCache{parser: parser, cache: c}, nil
}

// Parse is equivalent to the parser's Parse but serves repeated inputs
// from the cache. Errors are not cached.
func (pc *ParseCache) Parse(s string, matchType MatchType) (*Location, string, error) {
	key := parseCacheKey{input: s, matchType: matchType}
	if v, ok := pc.cache.Get(key); ok {
		ent := v.(*parseCacheEntry)
		return ent.loc.Clone(), ent.rest, nil
	}
	loc, rest, err := pc.parser.Parse(s, matchType)
	if err != nil {
		return nil, "", err
	}
	pc.cache.Add(key, &parseCacheEntry{loc: loc.Clone(), rest: rest})
	return loc, rest, nil
}

// Len returns the number of cached parses.
func (pc *ParseCache) Len() int {
	return pc.cache.Len()
}
