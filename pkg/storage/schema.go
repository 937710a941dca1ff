package storage

// Folder represents a top-level section of a Postman collection: a named group
// of requests, or a single request when Request is set.
type Folder struct {
	Name    string   `json:"name" yaml:"name"`                           // Section name, unique among siblings
	Items   []Item   `json:"item,omitempty" yaml:"item,omitempty"`       // Requests in the folder
	Request *Request `json:"request,omitempty" yaml:"request,omitempty"` // Set when the section is a bare request
}

// Item is a named request inside a folder.
type Item struct {
	Name     string        `json:"name" yaml:"name"`
	Request  Request       `json:"request" yaml:"request"`
	Response []interface{} `json:"response" yaml:"response"`
}

// Request is a Postman request definition.
type Request struct {
	Method string   `json:"method" yaml:"method"`                 // HTTP method (GET, POST, etc.)
	Header []Header `json:"header" yaml:"header"`                 // HTTP headers
	Body   *Body    `json:"body,omitempty" yaml:"body,omitempty"` // Request body
	URL    URL      `json:"url" yaml:"url"`                       // Raw and decomposed URL
}

// Header is a single request header.
type Header struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Body is a request body. Only raw bodies are used by the built-in sets.
type Body struct {
	Mode string `json:"mode" yaml:"mode"`
	Raw  string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// URL is a request URL in both raw and decomposed form.
type URL struct {
	Raw   string       `json:"raw" yaml:"raw"`
	Host  []string     `json:"host,omitempty" yaml:"host,omitempty"`
	Path  []string     `json:"path,omitempty" yaml:"path,omitempty"`
	Query []QueryParam `json:"query,omitempty" yaml:"query,omitempty"`
}

// QueryParam is a single query string parameter.
type QueryParam struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Requests flattens the folder into its requests, in order.
func (f Folder) Requests() []Item {
	if f.Request != nil {
		return []Item{{Name: f.Name, Request: *f.Request}}
	}
	return f.Items
}
