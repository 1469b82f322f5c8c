package templates

import (
	"github.com/osteele/liquid"
)

var engine = liquid.NewEngine()

// Dashboard renders the operator dashboard page.
func Dashboard(bindings map[string]interface{}) (string, error) {
	return engine.ParseAndRenderString(dashboardPage, bindings)
}

const dashboardPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Dispatch Board</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
.tiles { display: flex; gap: 1rem; margin-bottom: 1.5rem; }
.tile { border: 1px solid #ddd; border-radius: 6px; padding: 1rem 1.5rem; text-align: center; }
.tile .value { font-size: 1.8rem; font-weight: bold; }
.filters a { margin-right: 0.75rem; }
.filters a.active { font-weight: bold; text-decoration: none; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #ddd; padding: 0.4rem 0.6rem; text-align: left; }
.error { color: #b00020; }
.muted { color: #777; }
</style>
</head>
<body>
<h1>Dispatch Board</h1>

{% if state == "loading" %}
<p class="muted">Loading…</p>
{% elsif state == "error" %}
<p class="error">{{ error }}</p>
{% else %}
<div class="tiles">
  <div class="tile"><div class="value">{{ stats.total }}</div>Total</div>
  <div class="tile"><div class="value">{{ stats.status_ok }}</div>Status OK</div>
  <div class="tile"><div class="value">{{ stats.invalid_stock }}</div>Invalid stock</div>
  <div class="tile"><div class="value">{{ stats.snowy_stock }}</div>Snowy stock</div>
  <div class="tile"><div class="value">{{ stats.dispatchable }}</div>Dispatchable</div>
</div>

<div class="filters">
{% for f in filters %}
  <a href="/?filter={{ f.key }}" {% if f.active %}class="active"{% endif %}>{{ f.label }}</a>
{% endfor %}
</div>

<form method="get" action="/">
  <input type="hidden" name="filter" value="{{ filter }}">
  <input type="text" name="q" value="{{ search }}" placeholder="Search…">
  <button type="submit">Search</button>
</form>

{% if search != "" %}
<p class="muted">{{ dispatch_matches }} dispatch / {{ reallocation_matches }} reallocation matches for "{{ search }}"</p>
{% endif %}

<table>
  <tr>
    <th>Chassis</th><th>Customer</th><th>Model</th><th>PO</th><th>Source</th>
    <th>Scheduled dealer</th><th>Status</th><th>Dealer check</th><th>Reallocated to</th>
  </tr>
{% for e in entries %}
  <tr>
    <td>{{ e.chassis_number }}</td>
    <td>{{ e.customer }}</td>
    <td>{{ e.model }}</td>
    <td>{{ e.po_number }}</td>
    <td>{{ e.source }}</td>
    <td>{{ e.scheduled_dealer }}</td>
    <td>{{ e.status_check }}</td>
    <td>{{ e.dealer_check }}</td>
    <td>{{ e.reallocated_to }}</td>
  </tr>
{% endfor %}
</table>

<form method="post" action="/refresh">
  <p><button type="submit">Refresh</button>
  <span class="muted">loaded {{ loaded_at }}</span></p>
</form>
{% endif %}

</body>
</html>
`
