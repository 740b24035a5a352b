package service

// QRCodeService renders share codes for blogs.
type QRCodeService interface {
	// GenerateBlogQR returns a PNG QR code pointing at the blog's public page.
	GenerateBlogQR(blogID int64) ([]byte, error)

	// BlogURL returns the public page URL encoded in the QR code.
	BlogURL(blogID int64) string
}
