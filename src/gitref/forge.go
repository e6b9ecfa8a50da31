package gitref

import "strings"

// Forge identifies the platform hosting a remote.
type Forge string

const (
	GitLab  Forge = "gitlab"
	GitHub  Forge = "github"
	Gitea   Forge = "gitea"
	Unknown Forge = "unknown"
)

// DetectForge determines the forge platform from a git remote URL.
func DetectForge(remoteURL string) Forge {
	lower := strings.ToLower(remoteURL)

	switch {
	case strings.Contains(lower, "github.com"):
		return GitHub
	case strings.Contains(lower, "gitlab"):
		return GitLab
	case strings.Contains(lower, "gitea") || strings.Contains(lower, "forgejo") || strings.Contains(lower, "codeberg"):
		return Gitea
	default:
		// Self-hosted instances without obvious domain hints.
		return Unknown
	}
}

// BaseURL extracts the forge base URL from a git remote URL.
// Handles SSH (git@host:path, ssh://git@host/path) and HTTP(S) formats.
// Local paths and other schemes come back unchanged.
func BaseURL(remoteURL string) string {
	url := remoteURL

	if rest, ok := strings.CutPrefix(url, "ssh://"); ok {
		if at := strings.Index(rest, "@"); at >= 0 {
			rest = rest[at+1:]
		}
		host, _, _ := strings.Cut(rest, "/")
		host, _, _ = strings.Cut(host, ":")
		return "https://" + host
	}

	// scp-like: git@host:org/repo.git
	if at := strings.Index(url, "@"); at >= 0 && !strings.Contains(url, "://") {
		host, _, found := strings.Cut(url[at+1:], ":")
		if found {
			return "https://" + host
		}
	}

	for _, scheme := range []string{"https://", "http://"} {
		if rest, ok := strings.CutPrefix(url, scheme); ok {
			host, _, _ := strings.Cut(rest, "/")
			return scheme + host
		}
	}

	return url
}

// BranchURL returns a browser link to branch on the forge hosting
// remoteURL, or "" when the forge is not recognized.
func BranchURL(remoteURL, branch string) string {
	base := BaseURL(remoteURL)
	if !strings.HasPrefix(base, "http") {
		return ""
	}
	repo := repoPath(remoteURL)
	if repo == "" {
		return ""
	}

	switch DetectForge(remoteURL) {
	case GitHub:
		return base + "/" + repo + "/tree/" + branch
	case GitLab:
		return base + "/" + repo + "/-/tree/" + branch
	case Gitea:
		return base + "/" + repo + "/src/branch/" + branch
	default:
		return ""
	}
}

// repoPath returns "org/repo" from a remote URL, without a .git suffix.
func repoPath(remoteURL string) string {
	url := remoteURL
	if i := strings.Index(url, "://"); i >= 0 {
		url = url[i+3:]
		_, url, _ = strings.Cut(url, "/")
	} else if at := strings.Index(url, "@"); at >= 0 {
		_, url, _ = strings.Cut(url[at+1:], ":")
	}
	return strings.TrimSuffix(strings.Trim(url, "/"), ".git")
}
