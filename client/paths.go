package client

import (
	"fmt"
	"net/url"
	"strings"
)

// URL templates of the Things REST API. {name} is one escaped path segment,
// {+name} a slash-separated pointer whose segments are escaped one by one,
// and a bracketed group is dropped unless every parameter in it is set.
const (
	thingsPath     = "/cr/1/things"
	thingPath      = "/cr/1/things/{thingId}"
	searchPath     = "/cr/1/search/things"
	attributesPath = "/cr/1/things/{thingId}/attributes[/{+path}]"
	aclPath        = "/cr/1/things/{thingId}/acl[/{subject}]"
	ownerPath      = "/cr/1/things/{thingId}/owner"
	featuresPath   = "/cr/1/things/{thingId}/features[/{featureId}]"
	propertiesPath = "/cr/1/things/{thingId}/features/{featureId}/properties[/{+pointer}]"
)

type params map[string]string

// expand fills a URL template. A required parameter that is missing is an
// error; callers validate identifiers first, so this only guards templates.
func expand(template string, p params) (string, error) {
	var out strings.Builder
	for i := 0; i < len(template); {
		switch template[i] {
		case '[':
			end := strings.IndexByte(template[i:], ']')
			if end < 0 {
				return "", fmt.Errorf("template %q: unclosed group", template)
			}
			group := template[i+1 : i+end]
			if groupComplete(group, p) {
				expanded, err := expand(group, p)
				if err != nil {
					return "", err
				}
				out.WriteString(expanded)
			}
			i += end + 1
		case '{':
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("template %q: unclosed parameter", template)
			}
			name := template[i+1 : i+end]
			pointer := strings.HasPrefix(name, "+")
			name = strings.TrimPrefix(name, "+")
			value := p[name]
			if pointer {
				value = strings.Trim(value, "/")
			}
			if value == "" {
				return "", fmt.Errorf("template %q: missing parameter %q", template, name)
			}
			if pointer {
				out.WriteString(escapePointer(value))
			} else {
				out.WriteString(url.PathEscape(value))
			}
			i += end + 1
		default:
			out.WriteByte(template[i])
			i++
		}
	}
	return out.String(), nil
}

func groupComplete(group string, p params) bool {
	for rest := group; ; {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return true
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return false
		}
		name := strings.TrimPrefix(rest[start+1:start+end], "+")
		if strings.Trim(p[name], "/") == "" {
			return false
		}
		rest = rest[start+end+1:]
	}
}

func escapePointer(pointer string) string {
	segments := strings.Split(pointer, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// trimPointer normalises a JSON pointer argument for validation.
func trimPointer(pointer string) string {
	return strings.Trim(strings.TrimSpace(pointer), "/")
}
