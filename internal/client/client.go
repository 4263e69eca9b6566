// Package client talks to the MotoDash REST API over a go-openapi transport.
package client

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"

	"github.com/sm8ta/motodash/internal/core/domain"
)

const DefaultBasePath = "/"

// MotoDash groups one client per resource.
type MotoDash struct {
	Bikes       *ResourceClient[domain.Bike]
	Fuel        *ResourceClient[domain.FuelEntry]
	Maintenance *ResourceClient[domain.MaintenanceEntry]
	Parts       *ResourceClient[domain.Part]
	Tours       *ResourceClient[domain.Tour]

	Transport runtime.ClientTransport
}

func New(transport runtime.ClientTransport, formats strfmt.Registry) *MotoDash {
	if formats == nil {
		formats = strfmt.Default
	}

	return &MotoDash{
		Bikes:       NewResourceClient[domain.Bike](domain.BikeSchema.Resource, transport, formats),
		Fuel:        NewResourceClient[domain.FuelEntry](domain.FuelSchema.Resource, transport, formats),
		Maintenance: NewResourceClient[domain.MaintenanceEntry](domain.MaintenanceSchema.Resource, transport, formats),
		Parts:       NewResourceClient[domain.Part](domain.PartSchema.Resource, transport, formats),
		Tours:       NewResourceClient[domain.Tour](domain.TourSchema.Resource, transport, formats),
		Transport:   transport,
	}
}

func NewHTTP(host, basePath string, schemes []string) *MotoDash {
	if basePath == "" {
		basePath = DefaultBasePath
	}
	transport := httptransport.New(host, basePath, schemes)
	return New(transport, strfmt.Default)
}

// NewFromURL accepts a base URL such as http://localhost:4000.
func NewFromURL(rawURL string) (*MotoDash, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("invalid API URL %q: expected http(s)://host[:port]", rawURL)
	}

	basePath := strings.TrimSuffix(u.Path, "/")
	if basePath == "" {
		basePath = DefaultBasePath
	}
	return NewHTTP(u.Host, basePath, []string{u.Scheme}), nil
}
