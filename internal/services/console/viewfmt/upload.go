package viewfmt

import (
	"math"
	"strconv"
	"strings"
)

// sizeUnits orders the size suffixes by power of 1024.
const sizeUnits = "bkmgtpezy"

// ParseSize converts a limit such as "8M", "512k" or "1.5g" to bytes.
//
// The unit is the first suffix letter left after discarding everything that
// is not one of b,k,m,g,t,p,e,z,y; the magnitude is what remains after
// discarding everything but digits and dots. Unparseable magnitudes count as
// zero, so malformed limits never fail.
func ParseSize(raw string) float64 {
	var unit byte
	var digits strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c >= '0' && c <= '9') || c == '.' {
			digits.WriteByte(c)
			continue
		}
		if unit != 0 {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if strings.IndexByte(sizeUnits, c) >= 0 {
			unit = c
		}
	}

	magnitude := parseMagnitude(digits.String())
	if unit == 0 {
		return math.Round(magnitude)
	}
	power := strings.IndexByte(sizeUnits, unit)
	return math.Round(magnitude * math.Pow(1024, float64(power)))
}

// parseMagnitude reads the longest leading decimal number, the way a numeric
// string cast would, and returns zero when there is none.
func parseMagnitude(value string) float64 {
	end := 0
	seenDot := false
	for end < len(value) {
		if value[end] == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		end++
	}
	magnitude, err := strconv.ParseFloat(strings.TrimSuffix(value[:end], "."), 64)
	if err != nil {
		return 0
	}
	return magnitude
}

// UploadLimitBytes returns the largest upload the console accepts: the post
// limit, lowered to the upload limit unless that one is zero (unlimited).
// The value is computed once and then kept, even if the source changes.
func (f *Formatter) UploadLimitBytes() int64 {
	size := f.uploadLimit()
	if size >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(size)
}

// MaxFileUploadSize renders the upload limit as a byte count, e.g. "2.097 MBytes".
func (f *Formatter) MaxFileUploadSize() string {
	return f.Scale(f.uploadLimit(), Bytes, DefaultDecimals, Full)
}

func (f *Formatter) uploadLimit() float64 {
	f.uploadOnce.Do(func() {
		if f.limits == nil {
			return
		}
		size := ParseSize(f.limits.PostMaxSize())
		upload := ParseSize(f.limits.UploadMaxFilesize())
		if upload > 0 && upload < size {
			size = upload
		}
		f.uploadBytes = size
	})
	return f.uploadBytes
}
