// Package yamnet runs the YAMNet audio event classifier, exported to ONNX,
// through the onnx bindings.
//
// The exported graph takes one rank-1 float32 waveform (16 kHz mono,
// normalized to [-1, 1]) and returns three frame-major outputs: class
// scores [T, 521], embeddings [T, 1024], and a log-mel spectrogram [T', 64].
// Labels come from the class map CSV distributed next to the model.
//
//	m, err := yamnet.Open(cfg.Model)
//	if err != nil { ... }
//	defer m.Close()
//	inf, err := m.Classify(ctx, waveform)
package yamnet
