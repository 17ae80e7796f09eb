package http

import (
	"github.com/gofiber/fiber/v2"
)

// mapPageHTML renders the map, the country selector, the two zoom buttons
// and the vessel table. All state lives server-side in the session; the page
// only posts events and draws the returned view.
const mapPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>USV Map</title>
  <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
  <style>
    body{margin:0;font-family:system-ui,sans-serif}
    #bar{display:flex;gap:.5rem;align-items:center;padding:.5rem;background:#f4f4f4}
    #map{height:60vh}
    table{border-collapse:collapse;width:100%;font-size:.9rem}
    th,td{border-bottom:1px solid #ddd;padding:.25rem .5rem;text-align:left}
    #status{margin-left:auto;color:#666}
  </style>
</head>
<body>
  <div id="bar">
    <label>Country <select id="country"></select></label>
    <button id="zoom-all">Zoom to all</button>
    <button id="clear">Clear filter</button>
    <span id="status"></span>
  </div>
  <div id="map"></div>
  <table>
    <thead><tr><th>Name</th><th>Manufacturer</th><th>Country</th><th>Length (m)</th></tr></thead>
    <tbody id="rows"></tbody>
  </table>
  <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
  <script>
    const map = L.map('map');
    L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
      attribution: '&copy; OpenStreetMap contributors'
    }).addTo(map);
    const markers = L.layerGroup().addTo(map);
    const icon = L.divIcon({className: '', html: '&#9973;', iconSize: [18, 18]});
    const select = document.getElementById('country');

    function esc(s) {
      const d = document.createElement('div');
      d.textContent = s == null ? '' : String(s);
      return d.innerHTML;
    }

    function draw(view) {
      const st = view.state;
      map.setView([st.center.lat, st.center.lon], st.zoom);

      markers.clearLayers();
      const rows = [];
      for (const v of view.vessels) {
        L.marker([v.position.lat, v.position.lon], {icon})
          .bindTooltip(esc(v.name) + '<br>' + esc(v.manufacturer) + '<br>' + esc(v.country))
          .addTo(markers);
        rows.push('<tr><td>' + esc(v.name) + '</td><td>' + esc(v.manufacturer) + '</td><td>' +
          esc(v.country) + '</td><td>' + esc(v.length_m) + '</td></tr>');
      }
      document.getElementById('rows').innerHTML = rows.join('');

      select.innerHTML = view.countries.map(c => '<option>' + esc(c) + '</option>').join('');
      select.value = st.country;
      document.getElementById('status').textContent =
        view.dataset.placed + ' vessels, ' + view.dataset.dropped + ' unplaced';
    }

    async function send(method, path, body) {
      const res = await fetch(path, {
        method,
        credentials: 'same-origin',
        headers: body ? {'Content-Type': 'application/json'} : {},
        body: body ? JSON.stringify(body) : undefined,
      });
      if (!res.ok) {
        document.getElementById('status').textContent = 'error ' + res.status;
        return;
      }
      draw(await res.json());
    }

    select.addEventListener('change', () => send('POST', '/v1/view/select', {country: select.value}));
    document.getElementById('zoom-all').addEventListener('click', () => send('POST', '/v1/view/zoom-all'));
    document.getElementById('clear').addEventListener('click', () => send('POST', '/v1/view/clear'));

    const proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    const ws = new WebSocket(proto + location.host + '/ws');
    ws.onmessage = (e) => {
      const msg = JSON.parse(e.data);
      if (msg.type === 'dataset_loaded') send('GET', '/v1/view');
    };

    send('GET', '/v1/view');
  </script>
</body>
</html>`

// MapPageHandler serves the interactive map.
func MapPageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(mapPageHTML)
	}
}
