package onibus

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Storage guarda imagens de ônibus no S3 ou, sem credenciais AWS, em disco.
type Storage struct {
	uploader  *s3manager.Uploader
	s3Client  *s3.S3
	bucket    string
	region    string
	useS3     bool
	uploadDir string
	baseURL   string
}

// NewStorage monta o storage a partir das variáveis de ambiente.
func NewStorage() (*Storage, error) {
	awsRegion := os.Getenv("AWS_REGION")
	awsAccessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	awsSecretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	if awsRegion != "" && awsAccessKey != "" && awsSecretKey != "" {
		sess, err := session.NewSession(&aws.Config{
			Region:      aws.String(awsRegion),
			Credentials: credentials.NewStaticCredentials(awsAccessKey, awsSecretKey, ""),
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao criar sessão AWS: %w", err)
		}
		return &Storage{
			uploader: s3manager.NewUploader(sess),
			s3Client: s3.New(sess),
			bucket:   os.Getenv("AWS_S3_BUCKET"),
			region:   awsRegion,
			useS3:    true,
		}, nil
	}

	// Sem AWS configurada, cai para armazenamento local
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if err := os.MkdirAll(filepath.Join(uploadDir, "onibus"), 0755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de uploads: %w", err)
	}
	return &Storage{
		useS3:     false,
		uploadDir: uploadDir,
		baseURL:   baseURL,
	}, nil
}

// UploadImagem grava a imagem e devolve a URL pública.
func (s *Storage) UploadImagem(file *multipart.FileHeader, pasta string) (string, error) {
	if s.useS3 {
		return s.uploadS3(file, pasta)
	}
	return s.uploadLocal(file, pasta)
}

func (s *Storage) uploadS3(file *multipart.FileHeader, pasta string) (string, error) {
	if s.bucket == "" {
		return "", fmt.Errorf("bucket S3 não configurado")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("erro ao abrir arquivo: %w", err)
	}
	defer src.Close()

	buffer := bytes.NewBuffer(nil)
	if _, err := io.Copy(buffer, src); err != nil {
		return "", fmt.Errorf("erro ao ler arquivo: %w", err)
	}

	contentType := http.DetectContentType(buffer.Bytes())
	nome := fmt.Sprintf("%s/%d%s", pasta, time.Now().UnixNano(), filepath.Ext(file.Filename))

	_, err = s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(nome),
		Body:        bytes.NewReader(buffer.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("erro no upload para o S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, nome), nil
}

func (s *Storage) uploadLocal(file *multipart.FileHeader, pasta string) (string, error) {
	dir := filepath.Join(s.uploadDir, pasta)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório: %w", err)
	}

	nome := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	destino := filepath.Join(dir, nome)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("erro ao abrir arquivo: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(destino)
	if err != nil {
		return "", fmt.Errorf("erro ao criar arquivo: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("erro ao gravar arquivo: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, pasta, nome), nil
}
