// Package audioscore runs the scoring pipeline: load a WAV file, bring it to
// the classifier's sample rate, run the classifier over the whole recording
// or over fixed-length chunks, and write the per-frame class scores as JSON.
//
// The stages run strictly in sequence and the first error ends the run:
//
//	Load -> EnsureSampleRate -> Runner (whole | chunked) -> Writer
//
// The classifier is supplied by the caller through the [Classifier]
// interface; the yamnet package provides the ONNX-backed implementation.
//
// Output files, relative to the output store:
//
//	scores_data.json            whole-file mode, {classNames, scores}, pretty
//	scores_classes.json         whole-file mode, all labels, pretty
//	highlights.json             whole-file mode, when highlights are enabled
//	scores_data_chunk_<i>.json  chunked mode, {scores}, compact
package audioscore
