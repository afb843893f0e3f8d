// Package rdap provides a whois.Client backed by the Registration Data Access
// Protocol (RFC 9083). Lookups go through a bootstrap service such as
// https://rdap.org which redirects to the authoritative registry.
package rdap

import (
	"context"
	"dgaintel/pkg/serrors"
	"dgaintel/pkg/whois"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/jx"
)

// DefaultBaseURL is the public RDAP bootstrap service.
const DefaultBaseURL = "https://rdap.org"

// maxResponseBytes bounds an RDAP domain object.
const maxResponseBytes = 1 << 20

// Client queries an RDAP service. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Ensure Client conforms to the whois.Client interface at compile time.
var _ whois.Client = (*Client)(nil)

// New constructs a Client querying baseURL, DefaultBaseURL when empty.
func New(httpClient *http.Client, baseURL string) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid RDAP base URL %q", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Query fetches the registration record of domain.
func (c *Client) Query(ctx context.Context, domain string) (*whois.Record, error) {
	domain = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(domain), "."))
	if domain == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "domain is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/domain/"+url.PathEscape(domain), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/rdap+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach RDAP service")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if len(b) > maxResponseBytes {
		return nil, fmt.Errorf("RDAP response exceeds %d bytes", maxResponseBytes)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, serrors.With(serrors.ErrNotFound, "no registration data for %s", domain)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, serrors.With(serrors.ErrUnavailable, "RDAP service answered %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("lookup failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	rec, err := DecodeDomain(b)
	if err != nil {
		return nil, err
	}
	if rec.Domain == "" {
		rec.Domain = domain
	}

	return rec, nil
}

// DecodeDomain extracts a whois.Record from an RDAP domain object. The
// registrar is the "fn" of the first entity with the registrar role.
func DecodeDomain(b []byte) (*whois.Record, error) {
	var rec whois.Record
	if err := jx.DecodeBytes(b).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "ldhName":
			s, err := d.Str()
			if err != nil {
				return err //nolint: wrapcheck
			}
			rec.Domain = strings.ToLower(s)
		case "events":
			return d.Arr(func(d *jx.Decoder) error {
				return decodeEvent(d, &rec)
			})
		case "entities":
			return d.Arr(func(d *jx.Decoder) error {
				if rec.Registrar != "" {
					return d.Skip() //nolint: wrapcheck
				}
				name, err := decodeRegistrar(d)
				if err != nil {
					return err
				}
				rec.Registrar = name

				return nil
			})
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not decode RDAP response: %w", err)
	}

	return &rec, nil
}

func decodeEvent(d *jx.Decoder, rec *whois.Record) error {
	var action, date string
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "eventAction":
			action, err = d.Str()
		case "eventDate":
			date, err = d.Str()
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	}); err != nil {
		return err //nolint: wrapcheck
	}

	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		// unparseable dates are ignored, the record stays usable
		return nil //nolint: nilerr
	}
	switch action {
	case "registration":
		rec.CreationDate = t.UTC()
	case "expiration":
		rec.ExpirationDate = t.UTC()
	}

	return nil
}

// decodeRegistrar returns the vCard full name of an entity carrying the
// registrar role, or "" for any other entity.
func decodeRegistrar(d *jx.Decoder) (string, error) {
	var (
		registrar bool
		name      string
	)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "roles":
			return d.Arr(func(d *jx.Decoder) error {
				role, err := d.Str()
				if err != nil {
					return err //nolint: wrapcheck
				}
				if role == "registrar" {
					registrar = true
				}

				return nil
			})
		case "vcardArray":
			n, err := decodeVCardName(d)
			if err != nil {
				return err
			}
			name = n

			return nil
		default:
			return d.Skip() //nolint: wrapcheck
		}
	}); err != nil {
		return "", err //nolint: wrapcheck
	}
	if !registrar {
		return "", nil
	}

	return name, nil
}

// decodeVCardName reads a jCard (RFC 7095) such as
// ["vcard", [["version", {}, "text", "4.0"], ["fn", {}, "text", "Example Registrar"]]]
// and returns the value of its "fn" property.
func decodeVCardName(d *jx.Decoder) (string, error) {
	var name string
	err := d.Arr(func(d *jx.Decoder) error {
		if d.Next() != jx.Array {
			return d.Skip() //nolint: wrapcheck
		}

		return d.Arr(func(d *jx.Decoder) error {
			raw, err := d.Raw()
			if err != nil {
				return err //nolint: wrapcheck
			}

			var (
				values []string
				i      int
			)
			if err := jx.DecodeBytes(raw).Arr(func(d *jx.Decoder) error {
				defer func() { i++ }()
				// property name and value type are strings, parameters are an object
				if d.Next() != jx.String {
					return d.Skip() //nolint: wrapcheck
				}
				s, err := d.Str()
				if err != nil {
					return err //nolint: wrapcheck
				}
				if i == 0 || i == 3 {
					values = append(values, s)
				}

				return nil
			}); err != nil {
				return err //nolint: wrapcheck
			}
			if len(values) == 2 && values[0] == "fn" && name == "" {
				name = values[1]
			}

			return nil
		})
	})

	return name, err //nolint: wrapcheck
}
