package domain

// PayloadKind mirrors upi.PayloadKind for API and report output.
type PayloadKind string

const (
	PayloadKindEMV     PayloadKind = "emv"
	PayloadKindURL     PayloadKind = "url"
	PayloadKindUnknown PayloadKind = "unknown"
)

// ImageType represents the allowed QR image upload types.
type ImageType string

const (
	ImageTypeJPG ImageType = "jpg"
	ImageTypePNG ImageType = "png"
	ImageTypeGIF ImageType = "gif"
)

// AllowedContentTypes maps sniffed MIME content types to ImageType.
var AllowedContentTypes = map[string]ImageType{
	"image/jpeg": ImageTypeJPG,
	"image/png":  ImageTypePNG,
	"image/gif":  ImageTypeGIF,
}

// ReportFormat selects how batch results are rendered.
type ReportFormat string

const (
	ReportFormatJSON ReportFormat = "json"
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ParseReportFormat returns the format named by s, defaulting to JSON when s is empty.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch ReportFormat(s) {
	case "", ReportFormatJSON:
		return ReportFormatJSON, nil
	case ReportFormatCSV:
		return ReportFormatCSV, nil
	case ReportFormatXLSX:
		return ReportFormatXLSX, nil
	default:
		return "", ErrUnsupportedFormat
	}
}
