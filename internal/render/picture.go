package render

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Breakpoint is one responsive variant; an empty Media is the default
type Breakpoint struct {
	Media string
	Width int
}

// CardBreakpoints are the variants used for product card images
var CardBreakpoints = []Breakpoint{
	{Media: "(min-width: 900px)", Width: 600},
	{Media: "(min-width: 600px)", Width: 400},
	{Width: 320},
}

// OptimizedPicture builds a <picture> with a webp source per breakpoint,
// original-format fallbacks and a final <img> at the last breakpoint width.
// Only the path of src is kept; the image service adds width/format.
func OptimizedPicture(src, alt string, eager bool, breakpoints []Breakpoint) *html.Node {
	if len(breakpoints) == 0 {
		breakpoints = CardBreakpoints
	}

	pathname := src
	if u, err := url.Parse(src); err == nil {
		pathname = u.Path
	}
	ext := pathname[strings.LastIndex(pathname, ".")+1:]

	picture := element("picture", "")

	for _, br := range breakpoints {
		source := element("source", "")
		if br.Media != "" {
			setAttr(source, "media", br.Media)
		}
		setAttr(source, "type", "image/webp")
		setAttr(source, "srcset", variantURL(pathname, br.Width, "webply"))
		picture.AppendChild(source)
	}

	for i, br := range breakpoints {
		if i < len(breakpoints)-1 {
			source := element("source", "")
			if br.Media != "" {
				setAttr(source, "media", br.Media)
			}
			setAttr(source, "srcset", variantURL(pathname, br.Width, ext))
			picture.AppendChild(source)
			continue
		}

		loading := "lazy"
		if eager {
			loading = "eager"
		}
		img := element("img", "")
		setAttr(img, "loading", loading)
		setAttr(img, "alt", alt)
		setAttr(img, "src", variantURL(pathname, br.Width, ext))
		picture.AppendChild(img)
	}

	return picture
}

func variantURL(pathname string, width int, format string) string {
	return pathname + "?width=" + strconv.Itoa(width) + "&format=" + format + "&optimize=medium"
}
