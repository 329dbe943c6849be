package unit

import "fmt"

// Rgb renders the rgb() CSS color function.
func Rgb(r, g, b interface{}) string {
	return fmt.Sprintf("rgb(%v, %v, %v)", r, g, b)
}

// Rgba renders the rgba() CSS color function.
func Rgba(r, g, b, a interface{}) string {
	return fmt.Sprintf("rgba(%v, %v, %v, %v)", r, g, b, a)
}

// URL renders the url() CSS function, quoting the location.
func URL(location string) string {
	return fmt.Sprintf("url(%q)", location)
}
