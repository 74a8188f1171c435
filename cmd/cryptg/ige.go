package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brendoncarroll/go-cryptg/binding"
	"github.com/brendoncarroll/go-cryptg/crypto/blockmode"
	"github.com/brendoncarroll/go-cryptg/crypto/blockmode/blockmode_ige"
)

var (
	keyHex     string
	ivHex      string
	cipherName string
)

var schemes = map[string]blockmode.SchemeK256IV256{
	"aes":     blockmode_ige.AES256{},
	"twofish": blockmode_ige.Twofish256{},
}

func init() {
	for _, cmd := range []*cobra.Command{encryptCmd, decryptCmd} {
		cmd.Flags().StringVar(&keyHex, "key", "", "32 byte key, hex encoded")
		cmd.Flags().StringVar(&ivHex, "iv", "", "32 byte IV, hex encoded")
		cmd.Flags().StringVar(&cipherName, "cipher", "aes", "block cipher: aes or twofish")
	}
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [hex-plaintext]",
	Short: "Encrypt block aligned input in IGE mode, reading stdin if no argument is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIGE(cmd, args, binding.Encrypt)
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [hex-ciphertext]",
	Short: "Decrypt block aligned input in IGE mode, reading stdin if no argument is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIGE(cmd, args, binding.Decrypt)
	},
}

type igeFunc = func(s blockmode.SchemeK256IV256, src, key, iv []byte) ([]byte, error)

func runIGE(cmd *cobra.Command, args []string, fn igeFunc) error {
	s, exists := schemes[cipherName]
	if !exists {
		return errors.Errorf("unknown cipher %q", cipherName)
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return errors.Wrap(err, "parsing key")
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return errors.Wrap(err, "parsing iv")
	}
	var input []byte
	if len(args) > 0 {
		if input, err = hex.DecodeString(args[0]); err != nil {
			return errors.Wrap(err, "parsing input")
		}
	} else {
		if input, err = io.ReadAll(stdin); err != nil {
			return err
		}
	}
	log.Debugf("%s: %d bytes with %s", cmd.Name(), len(input), cipherName)
	output, err := fn(s, input, key, iv)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(output))
	return nil
}
