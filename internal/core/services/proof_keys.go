package services

import (
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/google/uuid"
)

const (
	paymentProofPrefix    = "proofs"
	settlementProofPrefix = "settlements"
)

var allowedProofTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/heic":      ".heic",
	"application/pdf": ".pdf",
}

// ProofObjectKey builds "<prefix>/<transactionID>/<random>.<ext>". The
// extension follows the file name when it has one, else the content type.
func ProofObjectKey(prefix, transactionID string, artifact portssvc.Artifact) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(artifact.Filename, "\\", "/"))))
	if ext == "" || len(ext) > 6 {
		ext = allowedProofTypes[baseContentType(artifact.ContentType)]
	}
	return fmt.Sprintf("%s/%s/%s%s", prefix, transactionID, uuid.NewString(), ext)
}

func validateArtifact(artifact portssvc.Artifact) error {
	if artifact.Body == nil || artifact.Size <= 0 {
		return fmt.Errorf("%w: proof file is empty", apperrors.ErrValidation)
	}
	if _, ok := allowedProofTypes[baseContentType(artifact.ContentType)]; !ok {
		return fmt.Errorf("%w: unsupported proof type %q", apperrors.ErrValidation, artifact.ContentType)
	}
	return nil
}

func baseContentType(ct string) string {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mediaType
}
