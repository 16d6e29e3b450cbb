package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"
	"time"
)

func GenerateOTP(otpLength int) (string, error) {
	const otpDigits = "0123456789"
	max := big.NewInt(int64(len(otpDigits)))

	otp := make([]byte, otpLength)
	for i := range otp {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		otp[i] = otpDigits[num.Int64()]
	}

	return string(otp), nil
}

func GenerateResetToken() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GenerateObjectName builds a collision-resistant object key inside a
// storage folder, keeping the original file extension.
func GenerateObjectName(folder, fieldName, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s/%s_%s%s", folder, fieldName, timestamp, ext)
}
