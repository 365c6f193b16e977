package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<gesmes:subject>Reference rates</gesmes:subject>
	<Cube>
		<Cube time="2026-08-27">
			<Cube currency="USD" rate="1.0832"/>
			<Cube currency="JPY" rate="161.49"/>
			<Cube currency="PLN" rate="4.3215"/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

func TestParseFeed(t *testing.T) {
	rates, err := ParseFeed([]byte(sampleFeed))
	require.NoError(t, err)
	require.Len(t, rates, 3)

	assert.Equal(t, Rate{Currency: "USD", Rate: 1.0832}, rates[0])
	assert.Equal(t, Rate{Currency: "JPY", Rate: 161.49}, rates[1])
	assert.Equal(t, Rate{Currency: "PLN", Rate: 4.3215}, rates[2])
}

func TestParseFeed_Empty(t *testing.T) {
	_, err := ParseFeed([]byte(`<Envelope><Cube><Cube time="2026-08-27"></Cube></Cube></Envelope>`))
	assert.Error(t, err)
}

func TestParseFeed_Garbage(t *testing.T) {
	_, err := ParseFeed([]byte("not xml at all"))
	assert.Error(t, err)
}
