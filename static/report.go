// Package static holds the HTML skeleton the HTML report adapter
// wraps a rendered chart and captured log lines in.
package static

// Header opens the report page and its two-pane layout: a chart pane
// on the left, a scrolling log pane on the right. Header takes the
// cell count so the chart pane's heading carries it without a second
// template pass.
var Header = `
<!DOCTYPE html>
<html>
<head>
	<title>planecut report</title>
	<style>
		body {
			background-color: #fafafa;
			color: #222;
			font-family: Consolas, monospace;
			margin: 0;
		}
		#layout {
			display: flex;
			width: 100%%;
			min-height: 100vh;
			box-sizing: border-box;
		}
		#chart-pane {
			width: 65%%;
			padding: 10px;
			box-sizing: border-box;
		}
		#log-pane {
			width: 35%%;
			padding: 10px;
			box-sizing: border-box;
			border-left: 2px solid #ccc;
			overflow: auto;
			background-color: #f0f0f0;
		}
		#log-pane pre {
			white-space: pre-wrap;
			word-wrap: break-word;
			font-size: 12px;
		}
		h1 {
			font-size: 16px;
		}
	</style>
</head>
<body>
	<div id="layout">
		<div id="chart-pane">
			<h1>%d cells</h1>
`

// LogPaneStart separates the chart from the log pane.
const LogPaneStart = `
		</div>
		<div id="log-pane">
			<h1>log</h1>
`

// Footer closes the log pane and the page.
const Footer = `
		</div>
	</div>
</body>
</html>
`
