package viewfmt

import (
	"fmt"
	"html/template"
	"reflect"
)

// Template function names registered by Funcs.
const (
	FuncAlerts            = "alerts"
	FuncMaxFileUploadSize = "maxFileUploadSize"
	FuncNagiosHostname    = "nagiosHostname"
	FuncScale             = "scale"
	FuncScaleBits         = "scaleBits"
	FuncScaleBytes        = "scaleBytes"
	FuncSoftwrap          = "softwrap"
)

// AlertRenderer renders the pending alerts of one request.
type AlertRenderer interface {
	HTML() template.HTML
}

// Funcs returns the helpers under the names views call them by. A nil
// alerts renderer makes "alerts" render nothing, which lets templates be
// parsed before a request exists; bind the request's renderer with
// AlertsFunc on a clone.
func Funcs(f *Formatter, alerts AlertRenderer) template.FuncMap {
	if f == nil {
		f = NewFormatter()
	}
	return template.FuncMap{
		FuncAlerts:            AlertsFunc(alerts),
		FuncMaxFileUploadSize: f.MaxFileUploadSize,
		FuncNagiosHostname:    nagiosHostnameFunc,
		FuncScale:             f.scaleFunc,
		FuncScaleBits:         f.scaleBitsFunc,
		FuncScaleBytes:        f.scaleBytesFunc,
		FuncSoftwrap:          softwrapFunc,
	}
}

// AlertsFunc adapts an AlertRenderer to the "alerts" template function.
func AlertsFunc(alerts AlertRenderer) func() template.HTML {
	return func() template.HTML {
		if alerts == nil {
			return ""
		}
		return alerts.HTML()
	}
}

// {{ scaleBits .Rate }} or {{ scaleBits .Rate 1 }}
func (f *Formatter) scaleBitsFunc(v any, decs ...int) (string, error) {
	value, err := toFloat(v)
	if err != nil {
		return "", err
	}
	return f.ScaleBits(value, decimalsArg(decs)), nil
}

// {{ scaleBytes .Volume }} or {{ scaleBytes .Volume 0 }}
func (f *Formatter) scaleBytesFunc(v any, decs ...int) (string, error) {
	value, err := toFloat(v)
	if err != nil {
		return "", err
	}
	return f.ScaleBytes(value, decimalsArg(decs)), nil
}

// {{ scale .Value "pkts" 2 "label" }}
func (f *Formatter) scaleFunc(v any, family string, rest ...any) (string, error) {
	value, err := toFloat(v)
	if err != nil {
		return "", err
	}
	decs := DefaultDecimals
	kind := Full
	if len(rest) > 2 {
		return "", fmt.Errorf("scale takes at most 4 arguments: %w", ErrInvalidArgument)
	}
	if len(rest) > 0 {
		d, err := toFloat(rest[0])
		if err != nil {
			return "", err
		}
		decs = int(d)
	}
	if len(rest) > 1 {
		name, ok := rest[1].(string)
		if !ok {
			return "", fmt.Errorf("scale return kind %T: %w", rest[1], ErrInvalidArgument)
		}
		kind = ParseReturnKind(name)
	}
	return f.Scale(value, ParseUnitFamily(family), decs, kind), nil
}

// {{ softwrap .ASNs 4 ", " "," 8 }}
func softwrapFunc(items any, perLine int, sep, lineEnding string, indent ...int) (string, error) {
	pad := 0
	if len(indent) > 0 {
		pad = indent[0]
	}
	return SoftwrapValues(items, perLine, sep, lineEnding, pad)
}

func nagiosHostnameFunc(abbreviatedName string, asn, protocol, vlanID, vlanInterfaceID any) (string, error) {
	values := [4]int64{}
	for i, raw := range []any{asn, protocol, vlanID, vlanInterfaceID} {
		v, err := toInt(raw)
		if err != nil {
			return "", err
		}
		values[i] = v
	}
	return NagiosHostname(abbreviatedName, values[0], int(values[1]), values[2], values[3]), nil
}

func decimalsArg(decs []int) int {
	if len(decs) == 0 {
		return DefaultDecimals
	}
	return decs[0]
}

func toFloat(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T: %w", v, ErrInvalidArgument)
	}
}

func toInt(v any) (int64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint()), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T: %w", v, ErrInvalidArgument)
	}
}
