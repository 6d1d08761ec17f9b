package viewfmt

import (
	"math"
	"strings"

	"golang.org/x/text/number"
)

// DefaultDecimals is the fractional precision used when a view does not pick one.
const DefaultDecimals = 3

// scaleStep is the ratio between two adjacent unit tiers.
const scaleStep = 1000.0

// UnitFamily selects the label set a value is scaled through.
type UnitFamily int

const (
	// Bits scales traffic rates: bits, Kbits, Mbits, Gbits, Tbits.
	Bits UnitFamily = iota
	// Bytes scales data volumes: Bytes, KBytes, MBytes, GBytes, TBytes.
	Bytes
	// Packets scales packet counters: pps, Kpps, Mpps, Gpps, Tpps.
	Packets
)

var (
	bitLabels    = [...]string{"bits", "Kbits", "Mbits", "Gbits", "Tbits"}
	byteLabels   = [...]string{"Bytes", "KBytes", "MBytes", "GBytes", "TBytes"}
	packetLabels = [...]string{"pps", "Kpps", "Mpps", "Gpps", "Tpps"}
)

// Labels returns the family's unit labels ordered smallest to largest.
func (f UnitFamily) Labels() []string {
	switch f {
	case Bytes:
		return byteLabels[:]
	case Packets:
		return packetLabels[:]
	default:
		return bitLabels[:]
	}
}

// String returns the canonical family name.
func (f UnitFamily) String() string {
	switch f {
	case Bytes:
		return "bytes"
	case Packets:
		return "pkts"
	default:
		return "bits"
	}
}

// ParseUnitFamily maps a graph category name onto its unit family.
// Unknown names fall back to Bits.
func ParseUnitFamily(name string) UnitFamily {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bytes":
		return Bytes
	case "pkts", "errs", "discs", "bcasts":
		return Packets
	default:
		return Bits
	}
}

// ReturnKind selects which parts of a scaled value are rendered.
type ReturnKind int

const (
	// Full renders the number followed by its unit label, e.g. "12.354 Tbits".
	Full ReturnKind = iota
	// NumberOnly renders the scaled number alone, e.g. "12.354".
	NumberOnly
	// LabelOnly renders the unit label alone, e.g. "Tbits".
	LabelOnly
)

// ParseReturnKind maps a view-facing name onto a ReturnKind.
// Unknown names fall back to Full.
func ParseReturnKind(name string) ReturnKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "number", "value":
		return NumberOnly
	case "label", "unit":
		return LabelOnly
	default:
		return Full
	}
}

// Scale divides v by 1000 until it drops below one step or the family runs
// out of larger units, then renders it with decs fractional digits.
//
// Negative values pick their tier by magnitude and keep their sign.
func (f *Formatter) Scale(v float64, family UnitFamily, decs int, kind ReturnKind) string {
	labels := family.Labels()
	tier := 0
	for ; tier < len(labels)-1; tier++ {
		if math.Abs(v)/scaleStep < 1.0 {
			break
		}
		v /= scaleStep
	}

	switch kind {
	case NumberOnly:
		return f.formatNumber(v, decs)
	case LabelOnly:
		return labels[tier]
	default:
		return f.formatNumber(v, decs) + " " + labels[tier]
	}
}

// ScaleBits renders a traffic rate in bits.
func (f *Formatter) ScaleBits(v float64, decs int) string {
	return f.Scale(v, Bits, decs, Full)
}

// ScaleBytes renders a data volume in bytes.
func (f *Formatter) ScaleBytes(v float64, decs int) string {
	return f.Scale(v, Bytes, decs, Full)
}

// formatNumber groups thousands and renders exactly decs fractional digits.
// Halves round away from zero.
func (f *Formatter) formatNumber(v float64, decs int) string {
	if decs < 0 {
		decs = 0
	}
	if !math.IsNaN(v) && !math.IsInf(v, 0) && decs <= maxRoundedDecimals {
		pow := math.Pow(10, float64(decs))
		if rounded := math.Round(v*pow) / pow; !math.IsInf(rounded, 0) && !math.IsNaN(rounded) {
			v = rounded
		}
		if v == 0 {
			// drop the sign of negative zero
			v = 0
		}
	}
	return f.printer.Sprintf("%v", number.Decimal(v, number.Scale(decs)))
}

// maxRoundedDecimals bounds the pre-rounding step; beyond it float64 cannot
// represent the scaled value exactly anyway.
const maxRoundedDecimals = 15
