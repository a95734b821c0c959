package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hostkit-labs/hostkit/internal/byteorder"
	"github.com/spf13/cobra"
)

var (
	endianFrom  string
	endianFloat bool
	endianBytes bool
)

func init() {
	endianCmd.Flags().StringVar(&endianFrom, "from", "big", "Byte order of the input: big or little")
	endianCmd.Flags().BoolVar(&endianFloat, "float", false, "Treat a 32-bit value as big-endian IEEE-754 float bits")
	endianCmd.Flags().BoolVar(&endianBytes, "bytes", false, "Treat the input as stored bytes rather than a loaded value")
	rootCmd.AddCommand(endianCmd)
}

type endianResult struct {
	Bits  int      `json:"bits" yaml:"bits"`
	From  string   `json:"from" yaml:"from"`
	Host  string   `json:"host" yaml:"host"`
	Input string   `json:"input" yaml:"input"`
	Value string   `json:"value" yaml:"value"`
	Float *float32 `json:"float,omitempty" yaml:"float,omitempty"`
	Bytes bool     `json:"bytes,omitempty" yaml:"bytes,omitempty"`
}

var endianCmd = &cobra.Command{
	Use:   "endian <16|32> <hex>",
	Short: "Convert a value from big- or little-endian to host order",
	Long: `Convert a 16- or 32-bit value to host byte order.

By default <hex> is a value as it was loaded from storage in --from order and
the host-order value is printed. With --bytes, <hex> lists the stored bytes
("78563412") and they are decoded in --from order. With --float the 32-bit
value holds big-endian IEEE-754 bits and the bytes are always reversed, so a
loaded float only accepts --from big; use --bytes to decode a stored
little-endian float.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bits, err := strconv.Atoi(args[0])
		if err != nil || (bits != 16 && bits != 32) {
			return fmt.Errorf("bit width must be 16 or 32, got %q", args[0])
		}
		from, err := byteorder.ParseOrder(endianFrom)
		if err != nil {
			return err
		}
		if endianFloat && bits != 32 {
			return fmt.Errorf("--float requires a 32-bit value")
		}

		res, err := convertEndian(bits, from, args[1], endianBytes, endianFloat)
		if err != nil {
			return err
		}
		logger.Debug("converted", map[string]string{"input": res.Input, "value": res.Value, "from": res.From})

		return render(cmd.OutOrStdout(), res, func(w io.Writer) error {
			if res.Float != nil {
				_, err := fmt.Fprintf(w, "%s %g\n", res.Value, *res.Float)
				return err
			}
			_, err := fmt.Fprintln(w, res.Value)
			return err
		})
	},
}

func convertEndian(bits int, from byteorder.Order, input string, stored, float bool) (endianResult, error) {
	res := endianResult{
		Bits:  bits,
		From:  from.String(),
		Host:  byteorder.HostOrder().String(),
		Input: input,
		Bytes: stored,
	}
	if float && !stored && from != byteorder.BigEndian {
		return res, fmt.Errorf("--float converts big-endian values only; use --bytes to decode %s storage", from)
	}
	digits := strings.TrimPrefix(strings.TrimPrefix(input, "0x"), "0X")

	if stored {
		raw, err := hex.DecodeString(digits)
		if err != nil {
			return res, fmt.Errorf("parsing bytes %q: %w", input, err)
		}
		if len(raw) != bits/8 {
			return res, fmt.Errorf("need %d byte(s) for a %d-bit value, got %d", bits/8, bits, len(raw))
		}
		if bits == 16 {
			res.Value = fmt.Sprintf("0x%04x", byteorder.Decode16(from, raw))
			return res, nil
		}
		if float {
			f := byteorder.DecodeFloat32(from, raw)
			res.Float = &f
			res.Value = fmt.Sprintf("0x%08x", math.Float32bits(f))
			return res, nil
		}
		res.Value = fmt.Sprintf("0x%08x", byteorder.Decode32(from, raw))
		return res, nil
	}

	v, err := strconv.ParseUint(digits, 16, bits)
	if err != nil {
		return res, fmt.Errorf("parsing %d-bit value %q: %w", bits, input, err)
	}

	conv := byteorder.Host()
	switch {
	case bits == 16:
		res.Value = fmt.Sprintf("0x%04x", conv.ToHost16(from, uint16(v)))
	case float:
		f := byteorder.BigEndianFloatToHost(math.Float32frombits(uint32(v)))
		res.Float = &f
		res.Value = fmt.Sprintf("0x%08x", math.Float32bits(f))
	default:
		res.Value = fmt.Sprintf("0x%08x", conv.ToHost32(from, uint32(v)))
	}
	return res, nil
}
