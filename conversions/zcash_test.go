package conversions

import (
	"encoding/hex"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	bls "github.com/kilic/bls12-381"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	g1GeneratorCompressedHex = "97f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb"
	g2GeneratorCompressedHex = "93e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e" +
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8"
)

func TestG1ZcashRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("G1 encode then decode is the identity", prop.ForAll(
		func(p bls12381.G1Affine) bool {
			buf := G1ToZcashBytes(&p)
			q, err := G1FromZcashBytes(buf[:])
			return err == nil && q.Equal(&p)
		},
		genG1(),
	))

	properties.Property("G1 encoding matches the native serializer", prop.ForAll(
		func(p bls12381.G1Affine) bool {
			buf := G1ToZcashBytes(&p)
			native := p.Bytes()
			return buf == native
		},
		genG1(),
	))

	properties.Property("G1 encoding is accepted by the pairing backend", prop.ForAll(
		func(p bls12381.G1Affine) bool {
			buf := G1ToZcashBytes(&p)
			q, err := bls.NewG1().FromCompressed(buf[:])
			return err == nil && bls.NewG1().Equal(q, G1ToPairing(&p))
		},
		genG1(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestG2ZcashRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("G2 encode then decode is the identity", prop.ForAll(
		func(p bls12381.G2Affine) bool {
			buf := G2ToZcashBytes(&p)
			q, err := G2FromZcashBytes(buf[:])
			return err == nil && q.Equal(&p)
		},
		genG2(),
	))

	properties.Property("G2 encoding matches the native serializer", prop.ForAll(
		func(p bls12381.G2Affine) bool {
			buf := G2ToZcashBytes(&p)
			native := p.Bytes()
			return buf == native
		},
		genG2(),
	))

	properties.Property("G2 encoding is accepted by the pairing backend", prop.ForAll(
		func(p bls12381.G2Affine) bool {
			buf := G2ToZcashBytes(&p)
			q, err := bls.NewG2().FromCompressed(buf[:])
			return err == nil && bls.NewG2().Equal(q, G2ToPairing(&p))
		},
		genG2(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestZcashGeneratorVectors(t *testing.T) {
	_, _, g1, g2 := bls12381.Generators()

	b1 := G1ToZcashBytes(&g1)
	assert.Equal(t, g1GeneratorCompressedHex, hex.EncodeToString(b1[:]))

	b2 := G2ToZcashBytes(&g2)
	assert.Equal(t, g2GeneratorCompressedHex, hex.EncodeToString(b2[:]))

	p1, err := G1FromZcashBytes(b1[:])
	require.NoError(t, err)
	assert.True(t, p1.Equal(&g1))

	p2, err := G2FromZcashBytes(b2[:])
	require.NoError(t, err)
	assert.True(t, p2.Equal(&g2))
}

func TestZcashIdentityEncoding(t *testing.T) {
	var id1 bls12381.G1Affine
	b1 := G1ToZcashBytes(&id1)
	assert.Equal(t, byte(0xC0), b1[0])
	for _, b := range b1[1:] {
		assert.Equal(t, byte(0x00), b)
	}

	var id2 bls12381.G2Affine
	b2 := G2ToZcashBytes(&id2)
	assert.Equal(t, byte(0xC0), b2[0])
	for _, b := range b2[1:] {
		assert.Equal(t, byte(0x00), b)
	}
}

func TestZcashInfinityFlagShortCircuits(t *testing.T) {
	// the payload is not inspected once the infinity flag is set
	var in [G1CompressedSize]byte
	in[0] = 0xC0
	in[1] = 0xFF
	in[G1CompressedSize-1] = 0xFF
	p, err := G1FromZcashBytes(in[:])
	require.NoError(t, err)
	assert.True(t, p.IsInfinity())

	var in2 [G2CompressedSize]byte
	in2[0] = 0xC0
	in2[G2CompressedSize-1] = 0xFF
	q, err := G2FromZcashBytes(in2[:])
	require.NoError(t, err)
	assert.True(t, q.IsInfinity())
}

func TestZcashRejectsUncompressed(t *testing.T) {
	var in [G1CompressedSize]byte
	_, err := G1FromZcashBytes(in[:])
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	// an uncompressed infinity flag is still not a compressed encoding
	in[0] = 0x40
	_, err = G1FromZcashBytes(in[:])
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	var in2 [G2CompressedSize]byte
	_, err = G2FromZcashBytes(in2[:])
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestZcashRejectsWrongLength(t *testing.T) {
	_, err := G1FromZcashBytes(make([]byte, G1CompressedSize-1))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	_, err = G1FromZcashBytes(make([]byte, G2CompressedSize))
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = G2FromZcashBytes(make([]byte, G1CompressedSize))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	_, err = G2FromZcashBytes(make([]byte, G2CompressedSize+1))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestZcashRejectsNonCanonicalCoordinate(t *testing.T) {
	var buf [fp.Bytes]byte
	fp.Modulus().FillBytes(buf[:])
	buf[0] |= maskCompressed
	_, err := G1FromZcashBytes(buf[:])
	assert.ErrorIs(t, err, ErrNonCanonicalFieldElement)

	var buf2 [G2CompressedSize]byte
	fp.Modulus().FillBytes(buf2[fp.Bytes:])
	buf2[0] |= maskCompressed
	_, err = G2FromZcashBytes(buf2[:])
	assert.ErrorIs(t, err, ErrNonCanonicalFieldElement)
}

func TestZcashProbingArbitraryAbscissas(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Roughly half of all field elements are valid abscissas. Decoding must
	// either fail with the curve membership error or yield a point that
	// re-encodes to the probed bytes.
	properties.Property("probing a random x either fails cleanly or round trips", prop.ForAll(
		func(e fp.Element) bool {
			var in [G1CompressedSize]byte
			fp.BigEndian.PutElement(&in, e)
			in[0] |= maskCompressed

			p, err := G1FromZcashBytes(in[:])
			if err != nil {
				return err == ErrPointNotOnCurve
			}
			out := G1ToZcashBytes(&p)
			return out == in
		},
		genFp(),
	))

	properties.Property("both square roots of a valid x decode", prop.ForAll(
		func(p bls12381.G1Affine) bool {
			buf := G1ToZcashBytes(&p)
			buf[0] ^= maskLexLargest
			q, err := G1FromZcashBytes(buf[:])
			if err != nil {
				return false
			}
			var negated bls12381.G1Affine
			negated.Neg(&p)
			return q.Equal(&negated)
		},
		genG1(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestZcashSignBit(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("sign bit tracks the larger square root", prop.ForAll(
		func(p bls12381.G1Affine) bool {
			buf := G1ToZcashBytes(&p)
			flags := ParseEncodingFlags(buf[:])
			return flags.IsLexicographicallyLargest == p.Y.LexicographicallyLargest()
		},
		genG1(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestZcashNotOnCurve(t *testing.T) {
	// scan for a small x that is not an abscissa; about half of them are not
	var x, ySq fp.Element
	found := false
	for i := uint64(1); i < 64; i++ {
		x.SetUint64(i)
		ySq.Square(&x).Mul(&ySq, &x).Add(&ySq, &bG1)
		if ySq.Legendre() != 1 {
			found = true
			break
		}
	}
	require.True(t, found)

	var in [G1CompressedSize]byte
	fp.BigEndian.PutElement(&in, x)
	in[0] |= maskCompressed
	_, err := G1FromZcashBytes(in[:])
	assert.ErrorIs(t, err, ErrPointNotOnCurve)
}

func TestZcashDoubleGenerator(t *testing.T) {
	_, _, g1, _ := bls12381.Generators()
	var p bls12381.G1Affine
	p.Double(&g1)

	buf := G1ToZcashBytes(&p)
	q, err := G1FromZcashBytes(buf[:])
	require.NoError(t, err)
	assert.True(t, q.Equal(&p))
}
