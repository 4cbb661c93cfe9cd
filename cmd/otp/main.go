// Command otp prints the current one-time code for a secret or an otpauth
// URI, the way the accbox popup computes it.
//
//	otp -secret JBSWY3DPEHPK3PXP
//	otp -uri 'otpauth://totp/Example:alice?secret=...' -qr
//	otp -type steam -secret <base64>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/internal/otp"
	"github.com/MKhiriev/accbox/models"
)

// secretEnv is read when neither -secret nor -uri is given.
const secretEnv = "ACCBOX_TOTP_SECRET"

const pngSize = 256

var errNoSecret = errors.New("a secret is required: use -secret, -uri or " + secretEnv)

func main() {
	if err := run(os.Args[1:], os.Stdout, time.Now()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.NewLogger("otp-cli").Fatal().Err(err).Msg("otp error")
	}
}

func run(args []string, out io.Writer, now time.Time) error {
	fs := flag.NewFlagSet("otp", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		secret    = fs.String("secret", "", "Base32 secret (Base64 for steam)")
		typ       = fs.String("type", string(models.OTPTypeTOTP), "Code type: totp, hotp or steam")
		algorithm = fs.String("algorithm", "SHA1", "HMAC algorithm: SHA1, SHA256 or SHA512")
		digits    = fs.Int("digits", models.DefaultDigits, "Code length")
		period    = fs.Int("period", models.DefaultPeriod, "Step in seconds")
		offset    = fs.Int64("offset", 0, "Clock correction in seconds")
		uri       = fs.String("uri", "", "otpauth:// URI, overrides the other key flags")
		account   = fs.String("account", "", "Account label used for -qr and -png")
		showQR    = fs.Bool("qr", false, "Print the key as a terminal QR code")
		pngPath   = fs.String("png", "", "Write the key as a PNG QR code to this path")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := models.TOTPConfig{
		Secret:     *secret,
		Type:       models.OTPType(strings.ToLower(*typ)),
		Algorithm:  strings.ToUpper(*algorithm),
		Digits:     *digits,
		Period:     *period,
		TimeOffset: *offset,
	}
	if *uri != "" {
		parsed, err := otp.ParseURI(*uri)
		if err != nil {
			return err
		}
		parsed.TimeOffset = *offset
		cfg = parsed
	}
	if cfg.Secret == "" {
		cfg.Secret = os.Getenv(secretEnv)
	}
	if cfg.Secret == "" {
		return errNoSecret
	}

	code, err := otp.Generate(cfg, now)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	remaining, _, urgency := otp.Window(cfg, now)

	fmt.Fprintf(out, "Code: %s\n", otp.FormatCode(code, cfg.EffectiveType()))
	fmt.Fprintf(out, "Valid for: %ds", remaining)
	if urgency.Expiring() {
		fmt.Fprint(out, " (expiring)")
	}
	fmt.Fprintln(out)

	if !*showQR && *pngPath == "" {
		return nil
	}

	keyURI := *uri
	if keyURI == "" {
		if keyURI, err = otp.KeyURI(cfg, *account); err != nil {
			return fmt.Errorf("export key: %w", err)
		}
	}
	if *showQR {
		qr, err := otp.QRCode(keyURI)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, qr)
	}
	if *pngPath != "" {
		if err = otp.WriteQRCodePNG(keyURI, *pngPath, pngSize); err != nil {
			return err
		}
		fmt.Fprintf(out, "QR code written to %s\n", *pngPath)
	}
	return nil
}
