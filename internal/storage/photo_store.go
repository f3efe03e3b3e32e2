package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

// Lado maior máximo da foto depois do redimensionamento.
const maxPhotoSize = 800

// PhotoStore converte fotos de produto para webp e envia ao S3.
type PhotoStore struct {
	client *s3.Client
	bucket string
	region string
}

func NewPhotoStore(bucket, region, accessKeyID, secretKey string) *PhotoStore {
	if bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKeyID, secretKey, ""),
	})

	return &PhotoStore{
		client: client,
		bucket: bucket,
		region: region,
	}
}

func (s *PhotoStore) Enabled() bool {
	return s != nil
}

// UploadProductPhoto decodifica jpeg/png, reduz para no máximo 800px,
// codifica em webp e grava no bucket. Devolve a URL pública.
func (s *PhotoStore) UploadProductPhoto(
	ctx context.Context,
	salonID uint,
	productID uint,
	r io.Reader,
) (string, error) {

	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("salons/%d/products/%d.webp", salonID, productID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func downscale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= maxPhotoSize && h <= maxPhotoSize {
		return src
	}

	nw, nh := maxPhotoSize, maxPhotoSize
	if w > h {
		nh = h * maxPhotoSize / w
	} else {
		nw = w * maxPhotoSize / h
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
