package ui

// Hand-drawn stand-ins for the sketch artwork: a moon, a spiral and an eye,
// plus the cutscene scripts. Content, not logic.

const sketchMoon = `
      _..._
    .:::::::.
   ::::::::::
   ::::::::::
   '::::::::'
     ':::::'
       '''`

const sketchSpiral = `
      _____
    /      \
   |   __   |
   |  |  |  |
   |  |__/  |
    \______/`

const sketchEye = `
     _.-''''-._
   .'   .--.   '.
  (    ( () )    )
   '.   '--'   .'
     '-......-'`

const sketchDivider = "~ · ~ · ~"

// cutscene is one interstitial: a sketch and lines revealed one by one.
type cutscene struct {
	art   string
	lines []string
}

// Cutscene content cycles over the session's cutscene counter.
var cutscenes = []cutscene{
	{art: sketchMoon, lines: []string{"Memories surface slowly...", "like dreams at dawn."}},
	{art: sketchSpiral, lines: []string{"The heart speaks", "in fragments and whispers..."}},
	{art: sketchMoon, lines: []string{"Almost there...", "one last breath."}},
}
