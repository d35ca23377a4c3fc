package dashboard

import (
	"net/url"
	"strings"
)

// nextLink returns the rel=next target of an RFC 5988 Link header, resolved
// against base. Paginated dashboard endpoints stop sending rel=next on the
// last page.
func nextLink(base *url.URL, header []string) (*url.URL, bool) {
	for _, h := range header {
		for _, link := range strings.Split(h, ",") {
			parts := strings.Split(link, ";")
			target := strings.TrimSpace(parts[0])
			if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
				continue
			}
			for _, p := range parts[1:] {
				kv := strings.SplitN(strings.TrimSpace(p), "=", 2)
				if len(kv) != 2 || strings.ToLower(kv[0]) != "rel" {
					continue
				}
				if strings.Trim(kv[1], `"`) != "next" {
					continue
				}
				u, err := url.Parse(target[1 : len(target)-1])
				if err != nil {
					return nil, false
				}
				return base.ResolveReference(u), true
			}
		}
	}
	return nil, false
}
