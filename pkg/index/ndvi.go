package index

// NDVI = (NIR - RED) / (NIR + RED), bands B08/B04.

var ndviStrategy = &Strategy{
	typ:           NDVI,
	output:        "ndvi",
	statsScript:   ndviStatsScript,
	visualScript:  ndviVisualScript,
	numericScript: ndviNumericScript,
}

const ndviStatsScript = `
  //VERSION=3
  function setup() {
    return {
      input: [{ bands: ["B04", "B08", "dataMask"] }],
      output: [
        { id: "ndvi", bands: 1 },
        { id: "dataMask", bands: 1 }
      ]
    };
  }

  function evaluatePixel(s) {
    let ndvi = (s.B08 - s.B04) / (s.B08 + s.B04);
    return { ndvi: [ndvi], dataMask: [s.dataMask] };
  }
`

const ndviVisualScript = `
  //VERSION=3
  function setup() {
    return {
      input: [{ bands: ["B04", "B08", "dataMask"] }],
      output: [{ id: "default", bands: 4, sampleType: "UINT8" }]
    };
  }

  function colorRamp(ndvi) {
    if (ndvi < 0)   return [255, 0, 0, 255];
    if (ndvi < 0.2) return [255, 255, 0, 255];
    if (ndvi < 0.4) return [144, 238, 144, 255];
    if (ndvi < 0.6) return [0, 128, 0, 255];
    return [0, 100, 0, 255];
  }

  function evaluatePixel(s) {
    if (s.dataMask === 0) return [0, 0, 0, 0];
    let ndvi = (s.B08 - s.B04) / (s.B08 + s.B04);
    return colorRamp(ndvi);
  }
`

const ndviNumericScript = `
  //VERSION=3
  function setup() {
    return {
      input: [{ bands: ["B04", "B08", "dataMask"] }],
      output: [{ id: "default", bands: 1, sampleType: "FLOAT32" }]
    };
  }

  function evaluatePixel(s) {
    if (s.dataMask === 0) return [NaN];
    let ndvi = (s.B08 - s.B04) / (s.B08 + s.B04);
    return [ndvi];
  }
`
