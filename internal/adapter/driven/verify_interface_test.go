package driven

import (
	port "github.com/alorle/nexum-portal/internal/port/driven"
)

// Compile-time check that RSSFeedFetcher implements FeedSource interface
var _ port.FeedSource = (*RSSFeedFetcher)(nil)

// Compile-time check that HLSEngineFactory implements MediaEngineFactory interface
var _ port.MediaEngineFactory = (*HLSEngineFactory)(nil)

// Compile-time check that HLSEngine implements MediaEngine interface
var _ port.MediaEngine = (*HLSEngine)(nil)

// Compile-time check that HeadlessSurface implements VideoSurface interface
var _ port.VideoSurface = (*HeadlessSurface)(nil)

// Compile-time check that ProbeMemoryRepository implements ProbeRepository interface
var _ port.ProbeRepository = (*ProbeMemoryRepository)(nil)
