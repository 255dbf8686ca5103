package math

import (
	"strconv"
	"sync"
)

// bufPool holds scratch byte buffers for text conversion.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64)
		return &b
	},
}

// FloatArrayToString renders values separated by single spaces, each with
// precision fractional digits. Trailing zeros and a dangling decimal point
// are trimmed when precision > 0.
func FloatArrayToString(values []float32, precision int) string {
	if precision < 0 {
		precision = 0
	}

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]

	for i, v := range values {
		if i > 0 {
			buf = append(buf, ' ')
		}
		start := len(buf)
		buf = strconv.AppendFloat(buf, float64(v), 'f', precision, 32)
		if precision > 0 {
			buf = trimFraction(buf, start)
		}
		// Negative zero and tiny negatives that round to zero print as "0".
		if string(buf[start:]) == "-0" {
			buf = append(buf[:start], '0')
		}
	}

	s := string(buf)
	*bp = buf
	bufPool.Put(bp)
	return s
}

// trimFraction drops trailing '0' and then trailing '.' from buf[start:].
func trimFraction(buf []byte, start int) []byte {
	n := len(buf)
	for n > start && buf[n-1] == '0' {
		n--
	}
	for n > start && buf[n-1] == '.' {
		n--
	}
	return buf[:n]
}
