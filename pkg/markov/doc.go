/*
Package markov provides a character-level sliding-window Markov model.

A Trainer reads a corpus one character at a time and records, for every
window of W consecutive characters, how often each character followed it.
Once the corpus is exhausted the counts are turned into probabilities and
cumulative probabilities, and the resulting Model is read-only.

A Generator continues a seed text by repeatedly sampling the next character
for the current window with Sample, shifting the window over each new
character. Randomness is always supplied by the caller through a
RandomSource, so a seeded source reproduces the same text on every run.
*/
package markov
