package images

// ImageType tags an image container format detected from leading bytes
type ImageType string

// ImageTypeJPEG identifies the JPEG container format
const ImageTypeJPEG ImageType = "jpeg"

// ImageTypePNG identifies the PNG container format
const ImageTypePNG ImageType = "png"

// ImageTypeGIF identifies the GIF container format (87a and 89a)
const ImageTypeGIF ImageType = "gif"

// ImageTypeWebP identifies the WebP container format
const ImageTypeWebP ImageType = "webp"

// ImageTypeBMP identifies the BMP container format
const ImageTypeBMP ImageType = "bmp"

// ImageTypeUnknown tags a buffer that matches no known signature
const ImageTypeUnknown ImageType = "unknown"

// MimeType returns the MIME type for the image format, or an empty string
// for an unknown format.
func (t ImageType) MimeType() string {
	switch t {
	case ImageTypeJPEG:
		return "image/jpeg"
	case ImageTypePNG:
		return "image/png"
	case ImageTypeGIF:
		return "image/gif"
	case ImageTypeWebP:
		return "image/webp"
	case ImageTypeBMP:
		return "image/bmp"
	default:
		return ""
	}
}
