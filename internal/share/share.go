package share

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	ModeHost = "host"
	ModeWeb  = "web"

	DefaultHostLink = "intoss://kickoff"
	DefaultWebURL   = "https://kickoff-live.vercel.app"

	title = "Kickoff - 킥오프"
	text  = "⚽ Kickoff - 킥오프\n실시간 축구 경기 정보를 확인하세요!"
)

var ErrInvalidPath = errors.New("invalid share path")

// Payload is what the client hands to the platform share sheet, or copies to
// the clipboard when no share sheet exists.
type Payload struct {
	Mode    string `json:"mode"`
	Title   string `json:"title"`
	Text    string `json:"text"`
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Sharer builds share payloads for an in-app path such as "/match/123".
type Sharer interface {
	Share(path string) (Payload, error)
}

// HostSharer links into the host app through its deep-link scheme.
type HostSharer struct {
	link string
}

func NewHostSharer(link string) *HostSharer {
	if strings.TrimSpace(link) == "" {
		link = DefaultHostLink
	}
	return &HostSharer{link: strings.TrimRight(link, "/")}
}

func (s *HostSharer) Share(path string) (Payload, error) {
	path, err := cleanPath(path)
	if err != nil {
		return Payload{}, err
	}
	link := s.link + path
	return Payload{
		Mode:    ModeHost,
		Title:   title,
		Text:    text,
		URL:     link,
		Message: text + "\n" + link,
	}, nil
}

// WebSharer shares the public web address.
type WebSharer struct {
	base string
}

func NewWebSharer(base string) (*WebSharer, error) {
	if strings.TrimSpace(base) == "" {
		base = DefaultWebURL
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Newf("share web url must be absolute, got %q", base)
	}
	return &WebSharer{base: strings.TrimRight(base, "/")}, nil
}

func (s *WebSharer) Share(path string) (Payload, error) {
	path, err := cleanPath(path)
	if err != nil {
		return Payload{}, err
	}
	link := s.base + path
	return Payload{
		Mode:    ModeWeb,
		Title:   title,
		Text:    text,
		URL:     link,
		Message: text + "\n" + link,
	}, nil
}

// New picks the sharer for mode once at startup.
func New(mode, hostLink, webURL string) (Sharer, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeHost:
		return NewHostSharer(hostLink), nil
	case "", ModeWeb:
		return NewWebSharer(webURL)
	default:
		return nil, errors.Newf("unknown share mode %q", mode)
	}
}

func cleanPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return "", nil
	}
	if !strings.HasPrefix(path, "/") || strings.Contains(path, "//") || strings.ContainsAny(path, " \t\n?#") {
		return "", errors.Wrapf(ErrInvalidPath, "%q", path)
	}
	return path, nil
}
