package index

// SAVI = (1 + L) * (NIR - RED) / (NIR + RED + L), L = 0.5, bands B08/B04.

var saviStrategy = &Strategy{
	typ:           SAVI,
	output:        "savi",
	statsScript:   saviStatsScript,
	visualScript:  saviVisualScript,
	numericScript: saviNumericScript,
}

const saviStatsScript = `
  //VERSION=3
  function setup() {
    return {
      input: [{ bands: ["B04", "B08", "dataMask"] }],
      output: [
        { id: "savi", bands: 1 },
        { id: "dataMask", bands: 1 }
      ]
    };
  }

  function evaluatePixel(s) {
    let L = 0.5;
    let savi = ((s.B08 - s.B04) / (s.B08 + s.B04 + L)) * (1 + L);
    return { savi: [savi], dataMask: [s.dataMask] };
  }
`

const saviVisualScript = `
  //VERSION=3
  function setup() {
    return {
      input: [{ bands: ["B04", "B08", "dataMask"] }],
      output: [{ id: "default", bands: 4, sampleType: "UINT8" }]
    };
  }

  function colorRamp(savi) {
    if (savi < 0)   return [165, 42, 42, 255];   // bare soil
    if (savi < 0.2) return [210, 180, 140, 255]; // sparse veg
    if (savi < 0.4) return [144, 238, 144, 255]; // moderate
    if (savi < 0.6) return [34, 139, 34, 255];   // healthy
    return [0, 100, 0, 255];                     // dense
  }

  function evaluatePixel(s) {
    if (s.dataMask === 0) return [0, 0, 0, 0];
    let L = 0.5;
    let savi = ((s.B08 - s.B04) / (s.B08 + s.B04 + L)) * (1 + L);
    return colorRamp(savi);
  }
`

const saviNumericScript = `
  //VERSION=3
  function setup() {
    return {
      input: [{ bands: ["B04", "B08", "dataMask"] }],
      output: [{ id: "default", bands: 1, sampleType: "FLOAT32" }]
    };
  }

  function evaluatePixel(s) {
    if (s.dataMask === 0) return [NaN];
    let L = 0.5;
    let savi = ((s.B08 - s.B04) / (s.B08 + s.B04 + L)) * (1 + L);
    return [savi];
  }
`
