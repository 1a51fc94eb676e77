package linking

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrUnknownRoute = errors.New("unknown route")
	ErrMissingParam = errors.New("missing route parameter")
)

// ルート名
const (
	RouteProducts = "products.list"
	RouteProduct  = "products.get"
	RouteOrders   = "orders.create"
	RouteOrder    = "orders.get"
)

// 静的なルート表（echo のルート登録もここから引く）
var routes = map[string]string{
	RouteProducts: "/products",
	RouteProduct:  "/products/:productId",
	RouteOrders:   "/orders",
	RouteOrder:    "/orders/:orderId",
}

type Params map[string]string

// Path はルート名からパステンプレートを返す
func Path(route string) string {
	p, ok := routes[route]
	if !ok {
		panic(fmt.Sprintf("linking: %s: %q", ErrUnknownRoute, route))
	}
	return p
}

// ResourceLinker はリソースの外部URIを組み立てる
type ResourceLinker interface {
	URI(route string, params Params) (string, error)
}

type Linker struct {
	base *url.URL
}

// DI
func NewLinker(baseURL string) (*Linker, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url must be absolute: %q", baseURL)
	}
	return &Linker{base: u}, nil
}

// URI はテンプレートの :name を params で置き換え、ベースURLにつなげる
func (l *Linker) URI(route string, params Params) (string, error) {
	tmpl, ok := routes[route]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}

	segs := strings.Split(tmpl, "/")
	raw := make([]string, len(segs))
	for i, s := range segs {
		raw[i] = s
		if !strings.HasPrefix(s, ":") {
			continue
		}
		name := s[1:]
		v, ok := params[name]
		if !ok || v == "" {
			return "", fmt.Errorf("%w: %s in %q", ErrMissingParam, name, route)
		}
		segs[i] = v
		raw[i] = url.PathEscape(v)
	}

	u := *l.base
	u.Path = l.base.Path + strings.Join(segs, "/")
	u.RawPath = l.base.EscapedPath() + strings.Join(raw, "/")
	return u.String(), nil
}
