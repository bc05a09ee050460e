// Command toyecdsa exposes the ECDSA engine on the command line.
//
// Curve parameters and operation inputs arrive as base-10 integers;
// results are printed one integer (or boolean) per line, so the tool
// can be driven from shell scripts and graders.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-toy-ecdsa/internal/crypto/curve"
	"github.com/smallyu/go-toy-ecdsa/pkg/ecdsa"
)

// userID is the fixed identifier printed by the userid subcommand.
const userID = "smallyu"

type options struct {
	check     bool
	seed      int64
	curveFile string
	verbose   bool

	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "toyecdsa",
		Short:         "ECDSA over caller-supplied small prime fields",
		Long: `toyecdsa runs ECDSA key generation, signing and verification on a
short-Weierstrass curve y^2 = x^3 + 7 over a caller-supplied prime
field. It is an educational tool: the arithmetic is not constant time
and nothing here is fit for protecting real keys.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return errors.Wrap(err, "initializing logger")
				}
				opts.logger = logger
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&opts.check, "check", false, "validate curve parameters (primality, base point, order) before computing")
	pf.Int64Var(&opts.seed, "seed", 0, "seed for the pseudo-random scalar source (default: wall clock)")
	pf.StringVar(&opts.curveFile, "curve-file", "", "YAML curve descriptor; replaces the positional p o Gx Gy arguments")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newUserIDCmd(),
		newGenKeyCmd(opts),
		newSignCmd(opts),
		newVerifyCmd(opts),
	)
	return root
}

func newUserIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "userid",
		Short: "Print the fixed user identifier",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), userID)
		},
	}
}

func newGenKeyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "genkey p o Gx Gy",
		Short: "Generate a key pair; prints d, Qx and Qy on separate lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, rest, err := opts.resolveCurve(args)
			if err != nil {
				return err
			}
			if len(rest) != 0 {
				return errors.Errorf("unexpected arguments after the curve: %v", rest)
			}

			kp, err := ecdsa.GenerateKey(c, opts.scalarSource(cmd))
			if err != nil {
				return err
			}
			if kp.Q.IsInfinity() {
				return errors.New("public key is the point at infinity; check curve parameters")
			}
			opts.logger.Debug("generated key pair",
				zap.String("d", kp.D.String()),
				zap.String("Q", kp.Q.String()))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, kp.D)
			fmt.Fprintln(out, kp.Q.X)
			fmt.Fprintln(out, kp.Q.Y)
			return nil
		},
	}
}

func newSignCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sign p o Gx Gy d h",
		Short: "Sign hash value h with private key d; prints r and s on separate lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, rest, err := opts.resolveCurve(args)
			if err != nil {
				return err
			}
			vals, err := parseBigArgs(rest, "d", "h")
			if err != nil {
				return err
			}

			sig, err := ecdsa.Sign(c, vals[0], vals[1], opts.scalarSource(cmd))
			if err != nil {
				return err
			}
			opts.logger.Debug("signed",
				zap.String("r", sig.R.String()),
				zap.String("s", sig.S.String()))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sig.R)
			fmt.Fprintln(out, sig.S)
			return nil
		},
	}
}

func newVerifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify p o Gx Gy Qx Qy r s h",
		Short: "Verify signature (r, s) over hash value h; prints True or False",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, rest, err := opts.resolveCurve(args)
			if err != nil {
				return err
			}
			vals, err := parseBigArgs(rest, "Qx", "Qy", "r", "s", "h")
			if err != nil {
				return err
			}

			Q := curve.NewPoint(vals[0], vals[1])
			sig := &ecdsa.Signature{R: vals[2], S: vals[3]}
			ok := ecdsa.Verify(c, Q, sig, vals[4])
			opts.logger.Debug("verified", zap.Bool("valid", ok))

			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "True")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "False")
			}
			return nil
		},
	}
}

// resolveCurve builds the curve descriptor from --curve-file or from
// the leading four positional arguments, returning the unconsumed
// arguments. Runs Validate when --check is set.
func (o *options) resolveCurve(args []string) (*curve.Params, []string, error) {
	var c *curve.Params
	rest := args

	if o.curveFile != "" {
		loaded, err := curve.LoadParams(o.curveFile)
		if err != nil {
			return nil, nil, err
		}
		c = loaded
	} else {
		vals, err := parseBigArgs(args[:min(len(args), 4)], "p", "o", "Gx", "Gy")
		if err != nil {
			return nil, nil, err
		}
		c = curve.KoblitzParams(vals[0], vals[1], vals[2], vals[3])
		rest = args[4:]
	}

	if c.P.Sign() <= 0 || c.N.Sign() <= 0 {
		return nil, nil, errors.New("p and o must be positive")
	}

	o.logger.Debug("curve resolved",
		zap.String("name", c.Name),
		zap.String("p", c.P.String()),
		zap.String("n", c.N.String()))

	if o.check {
		if err := c.Validate(); err != nil {
			return nil, nil, err
		}
	}
	return c, rest, nil
}

// scalarSource returns a seeded source when --seed was given, a
// wall-clock-seeded one otherwise.
func (o *options) scalarSource(cmd *cobra.Command) ecdsa.ScalarSource {
	if cmd.Flags().Changed("seed") {
		return ecdsa.NewMathRandSource(o.seed)
	}
	return ecdsa.NewTimeSeededSource()
}

// parseBigArgs parses one base-10 integer per name, requiring exactly
// len(names) arguments.
func parseBigArgs(args []string, names ...string) ([]*big.Int, error) {
	if len(args) != len(names) {
		return nil, errors.Errorf("expected %d arguments (%v), got %d", len(names), names, len(args))
	}
	vals := make([]*big.Int, len(args))
	for i, s := range args {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, errors.Errorf("argument %s: %q is not a base-10 integer", names[i], s)
		}
		vals[i] = v
	}
	return vals, nil
}
