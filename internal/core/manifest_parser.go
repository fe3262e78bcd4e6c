package core

import (
	"context"
	"regexp"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/rs/zerolog/log"

	"framelink/internal/types"
)

const hostedGitDomain = "github.com"

var declarationPattern = regexp.MustCompile(`^\s*(github|git)\s+"([^"]+)"\s+"([^"]+)"\s*$`)

var hostedShorthandPattern = regexp.MustCompile(`^[^/\s]+/[^/\s]+$`)

// ManifestParser turns Cartfile text into declarations. Lines that do not
// match `github "<owner>/<repo>" "<version>"` or `git "<url>" "<version>"`
// are dropped.
type ManifestParser struct{}

func NewManifestParser() ManifestParser {
	return ManifestParser{}
}

// Parse returns the declarations of every matching line in file order.
func (p ManifestParser) Parse(ctx context.Context, text string) []types.Declaration {
	var declarations []types.Declaration
	skipped := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		decl, ok := p.ParseLine(ctx, line)
		if !ok {
			skipped++
			continue
		}
		declarations = append(declarations, decl)
	}
	log.Ctx(ctx).Debug().
		Int("declarations", len(declarations)).
		Int("skipped", skipped).
		Msg("manifest parsed")
	return declarations
}

// ParseLine parses a single manifest line.
func (p ManifestParser) ParseLine(ctx context.Context, line string) (types.Declaration, bool) {
	match := declarationPattern.FindStringSubmatch(line)
	if match == nil {
		return types.Declaration{}, false
	}
	keyword, location, version := match[1], match[2], match[3]

	var decl types.Declaration
	switch types.SourceKind(keyword) {
	case types.SourceKindHostedGit:
		if !hostedShorthandPattern.MatchString(location) {
			return types.Declaration{}, false
		}
		slug := strings.TrimSuffix(location, ".git")
		decl = types.Declaration{
			Kind:      types.SourceKindHostedGit,
			RepoName:  slug[strings.Index(slug, "/")+1:],
			RemoteURL: "https://" + hostedGitDomain + "/" + slug + ".git",
			Version:   version,
		}
	case types.SourceKindDirectGit:
		decl = types.Declaration{
			Kind:      types.SourceKindDirectGit,
			RepoName:  repoNameFromURL(location),
			RemoteURL: location,
			Version:   version,
		}
	default:
		return types.Declaration{}, false
	}
	if decl.RepoName == "" {
		return types.Declaration{}, false
	}
	assert.NotEmpty(ctx, decl.RemoteURL, "declaration remote url must be set")
	return decl, true
}

// repoNameFromURL returns the final path segment of a remote with a
// trailing ".git" removed. scp-style remotes (git@host:owner/repo.git) and
// local paths are handled through the transport endpoint parser.
func repoNameFromURL(remote string) string {
	repoPath := remote
	if endpoint, err := transport.NewEndpoint(remote); err == nil && endpoint.Path != "" {
		repoPath = endpoint.Path
	}
	repoPath = strings.TrimRight(repoPath, "/")
	if idx := strings.LastIndexAny(repoPath, "/:"); idx >= 0 {
		repoPath = repoPath[idx+1:]
	}
	return strings.TrimSuffix(repoPath, ".git")
}
